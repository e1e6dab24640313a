// Graph construction and lookup method implementations.
//
// All mutating methods validate their inputs before touching any state,
// so a failed call never leaves a partially applied change behind.
// Adjacency is mirrored for both directions of every undirected edge,
// which keeps Neighbors/DistanceOf at O(1) map lookups.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNode inserts a new node with the given ID and priority.
// Descriptive attributes (state, coordinates, population) are supplied
// via NodeOption values and are never read by the solvers.
//
// Returns ErrEmptyNodeID if id is empty, ErrBadPriority if priority is
// outside [0.0, 1.0] (or NaN), ErrNodeExists if the ID is already present.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID, priority float64, opts ...NodeOption) error {
	// 1) Validate inputs before acquiring the lock.
	if id == "" {
		return ErrEmptyNodeID
	}
	// The negated comparison also rejects NaN.
	if !(priority >= 0.0 && priority <= 1.0) {
		return fmt.Errorf("%w: got %v for %q", ErrBadPriority, priority, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Reject duplicate IDs; construction must stay auditable.
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrNodeExists, id)
	}

	// 3) Insert the node and its (empty) adjacency bucket.
	n := &Node{ID: id, Priority: priority}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[id] = n
	g.adjacency[id] = make(map[NodeID]float64)

	return nil
}

// AddEdge connects two existing, distinct nodes with an undirected road
// segment of the given distance (kilometers). Adjacency is mirrored so
// the edge is traversable in both directions at identical distance.
//
// Returns ErrEmptyNodeID, ErrSelfLoop, ErrBadDistance, ErrNodeNotFound
// (either endpoint unknown), or ErrDuplicateEdge (the unordered pair is
// already connected; conflicting re-definitions are never silently
// overwritten).
// Complexity: O(1).
func (g *Graph) AddEdge(a, b NodeID, distance float64) error {
	// 1) Endpoint validation.
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	// 2) Distance must be a positive finite number.
	if !(distance > 0) || math.IsInf(distance, 1) {
		return fmt.Errorf("%w: got %v for %s-%s", ErrBadDistance, distance, a, b)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Both endpoints must already exist.
	if _, ok := g.nodes[a]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}
	// 4) One edge per unordered pair.
	if _, ok := g.adjacency[a][b]; ok {
		return fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, a, b)
	}

	// 5) Mirror adjacency both ways.
	g.adjacency[a][b] = distance
	g.adjacency[b][a] = distance
	g.edgeCount++

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// Node returns a copy of the node with the given ID.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return *n, nil
}

// PriorityOf returns the priority attribute of the given node.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) PriorityOf(id NodeID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n.Priority, nil
}

// DistanceOf returns the road distance between two directly connected
// nodes. Returns ErrNodeNotFound if either node is unknown, or
// ErrEdgeNotFound if the pair is not directly connected.
// Complexity: O(1).
func (g *Graph) DistanceOf(a, b NodeID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[a]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}
	d, ok := g.adjacency[a][b]
	if !ok {
		return 0, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, a, b)
	}

	return d, nil
}

// Neighbors returns the edges from the given node to each of its direct
// neighbors, sorted by neighbor ID ascending. The deterministic order is
// what makes solver tie-breaking reproducible for a fixed graph.
//
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(d log d) where d is the node degree.
func (g *Graph) Neighbors(id NodeID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	bucket := g.adjacency[id]
	edges := make([]Edge, 0, len(bucket))
	for to, d := range bucket {
		edges = append(edges, Edge{From: id, To: to, Distance: d})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// NodeIDs returns all node IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Edges returns every undirected edge exactly once (From < To), sorted
// by (From, To) ascending.
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for from, bucket := range g.adjacency {
		for to, d := range bucket {
			if from < to { // emit each unordered pair once
				edges = append(edges, Edge{From: from, To: to, Distance: d})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// NodeCount returns the number of nodes in the graph.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges in the graph.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
