// Package route implements the priority-weighted routing solvers.
//
// All three solvers rank edges by the priority-weighted cost
//
//	cost = distance / (avgPriority * urgency)
//
// where avgPriority is the mean of the two endpoint priorities and
// urgency is a global multiplier in [MinUrgency, MaxUrgency]. Lower cost
// means a more attractive edge: high-priority endpoints and high urgency
// shrink the effective length of a road, so the solvers divert toward
// urgent locations even when that costs raw kilometers.
//
// Solvers:
//
//   - ShortestPath: single-source shortest path from a source to a
//     destination under the cost metric (Dijkstra with a lazy-deletion
//     binary heap). Raw distance is accumulated alongside cost for
//     reporting. Complexity: O((V+E) log V).
//
//   - NearestCostTour: greedy whole-network tour: from the current node,
//     repeatedly move to the unvisited direct neighbor with the lowest
//     edge cost. Complexity: O(V²) worst case.
//
//   - GreedyPriorityTour: greedy whole-network tour: from the current
//     node, repeatedly move to the unvisited direct neighbor maximizing
//     (avgPriority * urgency) / distance. Complexity: O(V²) worst case.
//
// The tours are deliberate, documented approximations: they never
// backtrack and never fall back to a shortest-path detour, so nodes that
// cannot be reached from the current position through an unvisited
// direct neighbor are omitted from the tour. A partial tour is a valid
// outcome, not an error.
//
// Unreachability in general is a first-class outcome: solvers report it
// through Result.Unreachable(), never through an error.
package route
