// Package priorityroute computes delivery routes over a weighted city
// network where every location carries a priority attribute and a
// global urgency multiplier controls how much priority outweighs raw
// distance.
//
// The engine ranks roads by the priority-weighted cost
//
//	cost = distance / (avgPriority * urgency)
//
// and offers three solvers on top of it: a point-to-point shortest-path
// search and two greedy whole-network tour heuristics.
//
// The module is organized as:
//
//	core/    Graph, Node, Edge types and construction/lookup primitives
//	route/   the cost function, ShortestPath, and the two tour solvers
//	dataset/ YAML city/road loader plus an embedded sample network
//	server/  JSON HTTP API for external presentation layers
//	cmd/     the healthroute CLI (route, tour, cities, serve)
//
// Quick start:
//
//	ds, _ := dataset.Default()
//	g, _ := ds.BuildGraph()
//	res, err := route.ShortestPath(g, "Lagos", "Benin City", 5.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.TotalDistance, res.TotalCost)
//
// Graphs are immutable after construction, so any number of solver
// invocations may share one Graph concurrently.
package priorityroute
