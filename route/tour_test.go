// Package route_test contains unit tests for the greedy tour heuristics:
// selection rules, step-by-step accumulation, partial-tour termination,
// and determinism.
package route_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthroute/priorityroute/core"
	"github.com/healthroute/priorityroute/route"
)

// tourTriangle is the prevalence triangle closed with an
// Abraka-BeninCity road, so a full three-city tour exists.
func tourTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := prevalenceTriangle(t)
	require.NoError(t, g.AddEdge("Abraka", "BeninCity", 105))

	return g
}

func TestTours_Validation(t *testing.T) {
	g := tourTriangle(t)

	for name, solve := range map[string]func(*core.Graph, core.NodeID, float64) (route.Result, error){
		"nearest-cost":    route.NearestCostTour,
		"greedy-priority": route.GreedyPriorityTour,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := solve(g, "", 1.0)
			require.ErrorIs(t, err, route.ErrEmptySource)

			_, err = solve(nil, "Lagos", 1.0)
			require.ErrorIs(t, err, route.ErrNilGraph)

			_, err = solve(g, "Lagos", 0.01)
			require.ErrorIs(t, err, route.ErrBadUrgency)

			_, err = solve(g, "Onitsha", 1.0)
			require.ErrorIs(t, err, core.ErrNodeNotFound)
		})
	}
}

func TestNearestCostTour_PicksCheapestEdge(t *testing.T) {
	g := tourTriangle(t)

	// From Lagos at urgency 5: BeninCity costs 116, Abraka 350, so the
	// high-prevalence city comes first despite its 290 km distance.
	// From BeninCity the only unvisited neighbor is Abraka (105 km,
	// cost 105/(0.45*5) = 46.67).
	res, err := route.NearestCostTour(g, "Lagos", 5.0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{"Lagos", "BeninCity", "Abraka"}, res.Path)
	assert.InDelta(t, 395.0, res.TotalDistance, 1e-9)
	assert.InDelta(t, 116.0+105.0/2.25, res.TotalCost, 1e-9)
}

func TestGreedyPriorityTour_PicksHighestGain(t *testing.T) {
	g := tourTriangle(t)

	// Gains from Lagos at urgency 5: BeninCity (0.5*5)/290 ≈ 0.00862
	// beats Abraka (0.2*5)/350 ≈ 0.00286.
	res, err := route.GreedyPriorityTour(g, "Lagos", 5.0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{"Lagos", "BeninCity", "Abraka"}, res.Path)
	assert.InDelta(t, 395.0, res.TotalDistance, 1e-9)
	// TotalCost still accumulates EdgeCost, same as the nearest-cost tour.
	assert.InDelta(t, 116.0+105.0/2.25, res.TotalCost, 1e-9)
}

// TestTours_InverseObjectivesAgree: the greedy-priority gain is the
// exact reciprocal of the edge cost, so on a network where every edge
// has positive average priority the two tours select the same neighbor
// at every step and produce identical paths. The only behavioral
// difference between the solvers is at zero-priority edges (see
// TestTours_ZeroPriorityAsymmetry).
func TestTours_InverseObjectivesAgree(t *testing.T) {
	g := tourTriangle(t)
	require.NoError(t, g.AddNode("Warri", 0.5))
	require.NoError(t, g.AddNode("Asaba", 0.4))
	require.NoError(t, g.AddEdge("Warri", "Abraka", 50))
	require.NoError(t, g.AddEdge("Warri", "BeninCity", 90))
	require.NoError(t, g.AddEdge("Asaba", "BeninCity", 130))
	require.NoError(t, g.AddEdge("Asaba", "Abraka", 95))

	for _, urgency := range []float64{0.1, 1.0, 5.0, 10.0} {
		nc, err := route.NearestCostTour(g, "Lagos", urgency)
		require.NoError(t, err)
		gp, err := route.GreedyPriorityTour(g, "Lagos", urgency)
		require.NoError(t, err)
		assert.Equal(t, nc, gp, "urgency %v", urgency)
	}
}

func TestTours_SourceFirstAndNoRepeats(t *testing.T) {
	g := tourTriangle(t)
	require.NoError(t, g.AddNode("Warri", 0.5))
	require.NoError(t, g.AddEdge("Warri", "Abraka", 50))
	require.NoError(t, g.AddEdge("Warri", "BeninCity", 90))

	for name, solve := range map[string]func(*core.Graph, core.NodeID, float64) (route.Result, error){
		"nearest-cost":    route.NearestCostTour,
		"greedy-priority": route.GreedyPriorityTour,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := solve(g, "Lagos", 5.0)
			require.NoError(t, err)
			require.NotEmpty(t, res.Path)
			assert.Equal(t, core.NodeID("Lagos"), res.Path[0])

			seen := make(map[core.NodeID]bool, len(res.Path))
			for _, id := range res.Path {
				assert.False(t, seen[id], "node %s visited twice", id)
				seen[id] = true
			}
		})
	}
}

// TestTours_PartialTour: nodes with no unvisited direct neighbor from
// the current position are omitted; the tour never teleports and never
// falls back to a shortest-path detour.
func TestTours_PartialTour(t *testing.T) {
	// Star: Hub connects to A, B, C. After Hub→A the walk is stuck at A
	// (its only neighbor, Hub, is visited) and B, C are dropped.
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Hub", 0.5))
	for _, id := range []core.NodeID{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, 0.5))
		require.NoError(t, g.AddEdge("Hub", id, 10))
	}

	res, err := route.NearestCostTour(g, "Hub", 1.0)
	require.NoError(t, err)
	// Equal costs everywhere: the deterministic tie-break picks A.
	assert.Equal(t, []core.NodeID{"Hub", "A"}, res.Path)
	assert.InDelta(t, 10.0, res.TotalDistance, 1e-9)
	assert.False(t, res.Unreachable(), "a partial tour is a valid result")
}

func TestTours_IsolatedSource(t *testing.T) {
	g := tourTriangle(t)
	require.NoError(t, g.AddNode("Maiduguri", 0.6))

	// No neighbors at all: the tour is just the source with zero totals.
	res, err := route.NearestCostTour(g, "Maiduguri", 1.0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{"Maiduguri"}, res.Path)
	assert.Equal(t, 0.0, res.TotalDistance)
	assert.Equal(t, 0.0, res.TotalCost)
}

// TestTours_ZeroPriorityAsymmetry documents the asymmetry of the two
// objectives: an edge between zero-priority endpoints is impassable for
// the nearest-cost tour (+Inf cost) but traversable at gain 0 for the
// greedy-priority tour.
func TestTours_ZeroPriorityAsymmetry(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 0))
	require.NoError(t, g.AddNode("B", 0))
	require.NoError(t, g.AddEdge("A", "B", 10))

	nc, err := route.NearestCostTour(g, "A", 1.0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{"A"}, nc.Path)

	gp, err := route.GreedyPriorityTour(g, "A", 1.0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{"A", "B"}, gp.Path)
	assert.InDelta(t, 10.0, gp.TotalDistance, 1e-9)
	assert.True(t, math.IsInf(gp.TotalCost, 1), "the traversed edge still costs +Inf")
}

func TestTours_Deterministic(t *testing.T) {
	g := tourTriangle(t)

	first, err := route.GreedyPriorityTour(g, "Lagos", 5.0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := route.GreedyPriorityTour(g, "Lagos", 5.0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
