// The edge cost function.
//
// This is the single place domain semantics enter the solvers; every
// algorithm in this package ranks edges through EdgeCost (or, for the
// greedy-priority tour, its inverse-shaped gain).

package route

import "math"

// EdgeCost maps an edge to its priority-weighted scalar cost:
//
//	avgPriority = (priorityA + priorityB) / 2
//	cost        = distance / (avgPriority * urgency)
//
// Lower is better. Cost is strictly increasing in distance, strictly
// decreasing in avgPriority (for avgPriority > 0), and strictly
// decreasing in urgency (for urgency > 0).
//
// When avgPriority or urgency is zero the cost is +Inf: the edge is
// effectively impassable and the solvers will never traverse it.
//
// EdgeCost is a pure function and performs no range validation; the
// caller-facing solver entry points bound urgency to
// [MinUrgency, MaxUrgency] before any search runs.
// Complexity: O(1).
func EdgeCost(distance, priorityA, priorityB, urgency float64) float64 {
	avg := (priorityA + priorityB) / 2
	if avg == 0 || urgency == 0 {
		return math.Inf(1)
	}

	return distance / (avg * urgency)
}

// priorityGain is the selection objective of the greedy-priority tour:
//
//	gain = (avgPriority * urgency) / distance
//
// Higher is better, the inverse shape of EdgeCost. A zero avgPriority
// yields gain 0, which still ranks above an unreachable candidate.
// Complexity: O(1).
func priorityGain(distance, priorityA, priorityB, urgency float64) float64 {
	return ((priorityA + priorityB) / 2 * urgency) / distance
}
