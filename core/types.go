// Package core defines the Graph, Node, and Edge types used by the
// priority-weighted routing engine, together with the construction and
// lookup primitives the solvers rely on.
//
// A Graph is an undirected weighted network of locations: every Node
// carries a priority attribute in [0.0, 1.0] and every Edge carries a
// positive road distance in kilometers. The graph is append-only: nodes
// and edges are added during construction and never mutated afterwards,
// so any number of solvers may read the same Graph concurrently.
//
// This file declares NodeID, Node, Edge, Graph, NodeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrNodeExists    - node ID already present in the graph.
//	ErrBadPriority   - priority outside [0.0, 1.0].
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - requested edge does not exist.
//	ErrBadDistance   - edge distance is zero, negative, or not finite.
//	ErrSelfLoop      - edge endpoints are the same node.
//	ErrDuplicateEdge - unordered node pair already connected.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and lookups.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeExists indicates an attempt to add a node whose ID is already present.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrBadPriority indicates a priority value outside the [0.0, 1.0] range.
	ErrBadPriority = errors.New("core: priority must be in [0.0, 1.0]")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadDistance indicates an edge distance that is zero, negative, or not finite.
	ErrBadDistance = errors.New("core: distance must be positive and finite")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an unordered node pair that is already connected.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// NodeID uniquely identifies a Node within its Graph.
//
// A dedicated type (rather than a bare string) keeps node identifiers
// from being accidentally mixed with unrelated string data at call sites.
type NodeID string

// Node represents a location in the network.
//
// Priority is the only attribute the solvers read; the descriptive
// fields (State, Lat, Lon, Population) are carried for presentation
// layers and never influence routing.
type Node struct {
	// ID is the unique identifier for this Node.
	ID NodeID

	// Priority is the relative urgency/risk at this location, in [0.0, 1.0].
	Priority float64

	// State is an optional administrative region label.
	State string

	// Lat and Lon are optional WGS84 coordinates.
	Lat, Lon float64

	// Population is an optional population count.
	Population int64
}

// Edge represents a bidirectional road segment between two distinct nodes.
//
// Distance is the physical road length in kilometers and is identical in
// both directions.
type Edge struct {
	// From and To are the endpoint node IDs.
	From, To NodeID

	// Distance is the road distance in kilometers (always > 0).
	Distance float64
}

// NodeOption configures the descriptive attributes of a Node when added.
type NodeOption func(*Node)

// WithState sets the administrative region label of a node.
func WithState(state string) NodeOption {
	return func(n *Node) { n.State = state }
}

// WithCoords sets the latitude/longitude of a node.
func WithCoords(lat, lon float64) NodeOption {
	return func(n *Node) { n.Lat, n.Lon = lat, lon }
}

// WithPopulation sets the population count of a node.
func WithPopulation(population int64) NodeOption {
	return func(n *Node) { n.Population = population }
}

// Graph is the in-memory routing network.
//
// Nodes are stored in a map keyed by NodeID; adjacency is a nested map
// adjacency[a][b] = distance, mirrored for both directions of every
// undirected edge. The mutex guards construction; once loading is done
// all operations are read-only and safe to call concurrently.
type Graph struct {
	mu sync.RWMutex // guards nodes and adjacency during construction

	nodes     map[NodeID]*Node
	adjacency map[NodeID]map[NodeID]float64
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]*Node),
		adjacency: make(map[NodeID]map[NodeID]float64),
	}
}
