// Greedy whole-network tour heuristics.
//
// Both tours share the same traversal discipline: start at the source,
// repeatedly pick an unvisited direct neighbor of the current node
// according to the solver's selection rule, and stop as soon as no
// unvisited direct neighbor remains (or every node has been visited).
// There is no backtracking and no shortest-path fallback, so nodes that
// would require revisiting or detouring through visited territory are
// omitted. A partial tour is documented behavior, not a defect.
//
// Distance and cost totals are accumulated step by step as the walk is
// built, never recomputed afterwards.

package route

import (
	"fmt"
	"math"

	"github.com/healthroute/priorityroute/core"
)

// NearestCostTour walks the network greedily from source, moving at each
// step to the unvisited direct neighbor reachable by the lowest
// priority-weighted edge cost. Edges with +Inf cost (zero average
// priority) are never taken.
//
// Validation (in order): ErrEmptySource, ErrNilGraph, ErrBadUrgency,
// core.ErrNodeNotFound for an unknown source.
//
// Complexity: O(V²) worst case (V steps, each scanning up to deg(v)
// sorted neighbors).
func NearestCostTour(g *core.Graph, source core.NodeID, urgency float64) (Result, error) {
	if err := validateTourInput(g, source, urgency); err != nil {
		return Result{}, err
	}

	return runTour(g, source, urgency, pickNearestCost), nil
}

// GreedyPriorityTour walks the network greedily from source, moving at
// each step to the unvisited direct neighbor that maximizes
// (avgPriority * urgency) / distance, where higher is better.
//
// The tour's TotalCost still accumulates EdgeCost per traversed edge,
// so results from both tour solvers are directly comparable.
//
// Validation and complexity are identical to NearestCostTour.
func GreedyPriorityTour(g *core.Graph, source core.NodeID, urgency float64) (Result, error) {
	if err := validateTourInput(g, source, urgency); err != nil {
		return Result{}, err
	}

	return runTour(g, source, urgency, pickGreedyPriority), nil
}

// validateTourInput performs the shared boundary checks for both tours.
func validateTourInput(g *core.Graph, source core.NodeID, urgency float64) error {
	if source == "" {
		return ErrEmptySource
	}
	if g == nil {
		return ErrNilGraph
	}
	if err := validateUrgency(urgency); err != nil {
		return err
	}
	if !g.HasNode(source) {
		return fmt.Errorf("%w: source %q", core.ErrNodeNotFound, source)
	}

	return nil
}

// stepFunc selects the next edge to take from the candidate edges that
// lead to unvisited neighbors. It returns the chosen index, or -1 when
// no candidate is acceptable (which ends the tour).
//
// Candidates arrive sorted by neighbor ID ascending; a selector must
// replace its best pick only on a strict improvement, so ties resolve to
// the lexicographically first neighbor deterministically.
type stepFunc func(g *core.Graph, candidates []core.Edge, urgency float64) int

// runTour executes the shared greedy traversal with the given selector.
func runTour(g *core.Graph, source core.NodeID, urgency float64, pick stepFunc) Result {
	visited := map[core.NodeID]bool{source: true}
	res := Result{Path: []core.NodeID{source}}
	current := source
	total := g.NodeCount()

	for len(res.Path) < total {
		edges, err := g.Neighbors(current)
		if err != nil {
			break // current was placed on the path; cannot happen on an immutable graph
		}

		// Keep only edges leading to unvisited neighbors, preserving the
		// sorted order Neighbors guarantees.
		candidates := make([]core.Edge, 0, len(edges))
		for _, e := range edges {
			if !visited[e.To] {
				candidates = append(candidates, e)
			}
		}

		idx := pick(g, candidates, urgency)
		if idx < 0 {
			break // no unvisited direct neighbor: the tour is complete
		}

		// Take the step, accumulating both totals as we go.
		e := candidates[idx]
		pa, _ := g.PriorityOf(e.From)
		pb, _ := g.PriorityOf(e.To)
		res.TotalDistance += e.Distance
		res.TotalCost += EdgeCost(e.Distance, pa, pb, urgency)
		res.Path = append(res.Path, e.To)
		visited[e.To] = true
		current = e.To
	}

	return res
}

// pickNearestCost selects the candidate with the strictly lowest edge
// cost; +Inf-cost edges are unusable.
func pickNearestCost(g *core.Graph, candidates []core.Edge, urgency float64) int {
	best := -1
	bestCost := math.Inf(1)
	for i, e := range candidates {
		pa, _ := g.PriorityOf(e.From)
		pb, _ := g.PriorityOf(e.To)
		if c := EdgeCost(e.Distance, pa, pb, urgency); c < bestCost {
			best, bestCost = i, c
		}
	}

	return best
}

// pickGreedyPriority selects the candidate with the strictly highest
// priority gain. A zero-gain edge (zero average priority) is still
// traversable here, mirroring the asymmetry of the two objectives.
func pickGreedyPriority(g *core.Graph, candidates []core.Edge, urgency float64) int {
	best := -1
	bestGain := math.Inf(-1)
	for i, e := range candidates {
		pa, _ := g.PriorityOf(e.From)
		pb, _ := g.PriorityOf(e.To)
		if gain := priorityGain(e.Distance, pa, pb, urgency); gain > bestGain {
			best, bestGain = i, gain
		}
	}

	return best
}
