// Priority-weighted point-to-point shortest path.
//
// ShortestPath is Dijkstra's algorithm with the edge weight replaced by
// EdgeCost. All edge costs are non-negative (distance > 0, priorities in
// [0,1], urgency > 0), so the greedy-finalization invariant holds for
// the cost metric exactly as it does for raw distance, and the returned
// path is cost-minimal under the given urgency.
//
// Implementation notes:
//
//   - Lazy-deletion priority queue: instead of a decrease-key operation
//     we push duplicate entries and discard stale ones on pop, checked
//     against the finalized set.
//   - Raw distance is accumulated in parallel with cost so the Result
//     can report kilometers without a second pass.
//   - Edges whose cost is +Inf (zero average priority) are impassable
//     and never relaxed.
//   - Ties in cost break on node ID ascending, which together with the
//     sorted neighbor order makes results reproducible for a fixed graph.

package route

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/healthroute/priorityroute/core"
)

// ShortestPath computes the cost-minimal path from source to destination
// under the given urgency.
//
// Returns:
//
//   - A Result whose Path runs from source to destination, with the raw
//     distance total and priority-weighted cost total accumulated along it.
//   - If source == destination, Result is {[source], 0, 0}.
//   - If no path connects the two nodes, Result.Unreachable() is true
//     and err is nil: unreachability is an outcome, not an error.
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. destination must be non-empty (ErrEmptyDestination).
//  3. g must be non-nil (ErrNilGraph).
//  4. urgency must lie in [MinUrgency, MaxUrgency] (ErrBadUrgency).
//  5. source and destination must exist in g (core.ErrNodeNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source, destination core.NodeID, urgency float64) (Result, error) {
	// 1) Validate inputs before any search state is allocated.
	if source == "" {
		return Result{}, ErrEmptySource
	}
	if destination == "" {
		return Result{}, ErrEmptyDestination
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := validateUrgency(urgency); err != nil {
		return Result{}, err
	}
	if !g.HasNode(source) {
		return Result{}, fmt.Errorf("%w: source %q", core.ErrNodeNotFound, source)
	}
	if !g.HasNode(destination) {
		return Result{}, fmt.Errorf("%w: destination %q", core.ErrNodeNotFound, destination)
	}

	// 2) Trivial route: the single-node path with zero totals.
	if source == destination {
		return Result{Path: []core.NodeID{source}, TotalDistance: 0, TotalCost: 0}, nil
	}

	// 3) Run the search.
	r := newPathRunner(g, source, destination, urgency)
	r.process()

	// 4) Reconstruct the path, or report the no-route outcome.
	return r.result(), nil
}

// pathRunner holds the mutable state of a single ShortestPath execution.
type pathRunner struct {
	g           *core.Graph
	source      core.NodeID
	destination core.NodeID
	urgency     float64

	priority map[core.NodeID]float64 // node ID → priority attribute (snapshot)
	cost     map[core.NodeID]float64 // node ID → best-known cumulative cost
	dist     map[core.NodeID]float64 // node ID → cumulative raw distance on that best path
	prev     map[core.NodeID]core.NodeID
	visited  map[core.NodeID]bool // finalized nodes
	pq       costPQ
}

// newPathRunner initializes the per-node state (cost/distance +Inf except
// the source at 0) and seeds the frontier with the source.
func newPathRunner(g *core.Graph, source, destination core.NodeID, urgency float64) *pathRunner {
	ids := g.NodeIDs()
	r := &pathRunner{
		g:           g,
		source:      source,
		destination: destination,
		urgency:     urgency,
		priority:    make(map[core.NodeID]float64, len(ids)),
		cost:        make(map[core.NodeID]float64, len(ids)),
		dist:        make(map[core.NodeID]float64, len(ids)),
		prev:        make(map[core.NodeID]core.NodeID, len(ids)),
		visited:     make(map[core.NodeID]bool, len(ids)),
		pq:          make(costPQ, 0, len(ids)),
	}

	inf := math.Inf(1)
	for _, id := range ids {
		p, _ := g.PriorityOf(id) // id came from NodeIDs, lookup cannot fail
		r.priority[id] = p
		r.cost[id] = inf
		r.dist[id] = inf
	}
	r.cost[source] = 0
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &costItem{id: source, cost: 0})

	return r
}

// process is the main Dijkstra loop: extract the minimum-cost frontier
// entry, discard stale duplicates, finalize, stop early at the
// destination, otherwise relax the node's edges.
func (r *pathRunner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*costItem)
		u := item.id

		// Stale entry from the lazy-deletion scheme: skip.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// The destination's cost is final once extracted; stop here.
		if u == r.destination {
			return
		}

		r.relax(u)
	}
}

// relax attempts to improve the cost of every non-finalized neighbor of u.
func (r *pathRunner) relax(u core.NodeID) {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return // u came from NodeIDs; cannot happen on an immutable graph
	}

	for _, e := range edges {
		v := e.To
		if r.visited[v] {
			continue
		}

		c := EdgeCost(e.Distance, r.priority[u], r.priority[v], r.urgency)
		if math.IsInf(c, 1) {
			continue // impassable edge (zero average priority)
		}

		newCost := r.cost[u] + c
		if newCost >= r.cost[v] {
			continue
		}

		// Strictly better path to v: record it and push a frontier entry.
		r.cost[v] = newCost
		r.dist[v] = r.dist[u] + e.Distance
		r.prev[v] = u
		heap.Push(&r.pq, &costItem{id: v, cost: newCost})
	}
}

// result reconstructs the path by walking predecessor links from the
// destination back to the source. A destination that was never finalized
// is unreachable.
func (r *pathRunner) result() Result {
	if !r.visited[r.destination] {
		return unreachableResult()
	}

	path := []core.NodeID{r.destination}
	for cur := r.destination; cur != r.source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	// Reverse into source → destination order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{
		Path:          path,
		TotalDistance: r.dist[r.destination],
		TotalCost:     r.cost[r.destination],
	}
}

// costItem is a frontier entry: a node and its cumulative cost at push time.
type costItem struct {
	id   core.NodeID
	cost float64
}

// costPQ is a min-heap of *costItem ordered by cost ascending, with node
// ID as a deterministic tie-break. Duplicate entries for the same node
// are expected (lazy-deletion) and filtered on pop via the visited set.
type costPQ []*costItem

// Len returns the number of items in the heap.
func (pq costPQ) Len() int { return len(pq) }

// Less orders by cumulative cost, then node ID for reproducible ties.
func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new element; called by heap.Push.
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
