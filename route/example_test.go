// Package route_test provides runnable examples for the solvers.
// Each example is runnable via "go test -run Example", showing both the
// calling pattern and the expected output.
package route_test

import (
	"fmt"

	"github.com/healthroute/priorityroute/core"
	"github.com/healthroute/priorityroute/route"
)

// ExampleShortestPath demonstrates how urgency steers the route toward
// high-priority locations.
func ExampleShortestPath() {
	// 1) Build the network: cities with priorities, roads with distances.
	g := core.NewGraph()
	_ = g.AddNode("Lagos", 0.25)
	_ = g.AddNode("Abraka", 0.15)
	_ = g.AddNode("BeninCity", 0.75)
	_ = g.AddEdge("Lagos", "Abraka", 350)
	_ = g.AddEdge("Lagos", "BeninCity", 290)

	// 2) Solve at high urgency: priority dominates distance.
	res, err := route.ShortestPath(g, "Lagos", "BeninCity", 5.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The result carries both the raw kilometers and the weighted cost.
	fmt.Printf("path=%v\n", res.Path)
	fmt.Printf("distance=%.0f km cost=%.1f\n", res.TotalDistance, res.TotalCost)
	// Output:
	// path=[Lagos BeninCity]
	// distance=290 km cost=116.0
}

// ExampleNearestCostTour demonstrates a greedy whole-network tour.
func ExampleNearestCostTour() {
	g := core.NewGraph()
	_ = g.AddNode("Lagos", 0.25)
	_ = g.AddNode("Abraka", 0.15)
	_ = g.AddNode("BeninCity", 0.75)
	_ = g.AddEdge("Lagos", "Abraka", 350)
	_ = g.AddEdge("Lagos", "BeninCity", 290)
	_ = g.AddEdge("Abraka", "BeninCity", 105)

	// At urgency 5 the cheapest first hop is the high-priority BeninCity
	// (cost 116) rather than the raw-distance runner-up Abraka (cost 350).
	res, err := route.NearestCostTour(g, "Lagos", 5.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("tour=%v\n", res.Path)
	fmt.Printf("distance=%.0f km\n", res.TotalDistance)
	// Output:
	// tour=[Lagos BeninCity Abraka]
	// distance=395 km
}

// ExampleResult_Unreachable shows the no-route outcome: a first-class
// result, not an error.
func ExampleResult_Unreachable() {
	g := core.NewGraph()
	_ = g.AddNode("Lagos", 0.25)
	_ = g.AddNode("Maiduguri", 0.6) // not connected to anything

	res, err := route.ShortestPath(g, "Lagos", "Maiduguri", 1.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("unreachable:", res.Unreachable())
	// Output:
	// unreachable: true
}
