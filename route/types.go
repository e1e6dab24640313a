// Shared types, urgency bounds, and sentinel errors
// for the priority-weighted solvers.
//
// Errors (sentinel):
//
//	ErrNilGraph         - nil *core.Graph passed to a solver.
//	ErrEmptySource      - source node ID is empty.
//	ErrEmptyDestination - destination node ID is empty.
//	ErrBadUrgency       - urgency outside [MinUrgency, MaxUrgency] or not finite.
//
// Unknown node IDs surface as core.ErrNodeNotFound wrapped with the
// offending ID, so callers can errors.Is against the core sentinel.

package route

import (
	"errors"
	"math"

	"github.com/healthroute/priorityroute/core"
)

// Operating range for the urgency multiplier. Values outside this
// envelope are mathematically well-defined but rejected at the API
// boundary to keep behavior within the documented range.
const (
	// MinUrgency is the lowest accepted urgency multiplier.
	MinUrgency = 0.1

	// MaxUrgency is the highest accepted urgency multiplier.
	MaxUrgency = 10.0
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a solver.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("route: source node ID is empty")

	// ErrEmptyDestination indicates that the provided destination node ID is empty.
	ErrEmptyDestination = errors.New("route: destination node ID is empty")

	// ErrBadUrgency indicates an urgency outside [MinUrgency, MaxUrgency].
	ErrBadUrgency = errors.New("route: urgency out of range [0.1, 10.0]")
)

// Result is the outcome of any solver: the visiting order, the total raw
// distance in kilometers, and the total priority-weighted cost, both
// accumulated edge by edge during the traversal.
//
// For ShortestPath, Path is a simple path from source to destination.
// For the tour solvers, Path is a sequence of distinct nodes starting at
// the source (possibly omitting nodes the greedy walk could not reach).
//
// The zero distance/cost result for a single-node path is {[source], 0, 0}.
// An unreachable destination yields Path == nil with infinite totals;
// test via Unreachable().
type Result struct {
	// Path is the ordered sequence of visited node IDs (first element = source).
	Path []core.NodeID

	// TotalDistance is the sum of traversed edge distances, in kilometers.
	TotalDistance float64

	// TotalCost is the sum of traversed edge costs under the cost metric.
	TotalCost float64
}

// Unreachable reports whether this Result represents the no-route
// outcome: the destination exists but no path connects it to the source.
// This is a normal, reportable outcome rather than an error.
func (r Result) Unreachable() bool {
	return r.Path == nil
}

// unreachableResult is the canonical no-route Result.
func unreachableResult() Result {
	return Result{
		Path:          nil,
		TotalDistance: math.Inf(1),
		TotalCost:     math.Inf(1),
	}
}

// validateUrgency rejects urgency values outside the documented
// operating envelope. NaN fails the range comparison as well.
func validateUrgency(urgency float64) error {
	if !(urgency >= MinUrgency && urgency <= MaxUrgency) {
		return ErrBadUrgency
	}

	return nil
}
