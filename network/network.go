// SPDX-License-Identifier: MIT
// File: network.go
// Role: Network type, New constructor and topology queries
//       (Nodes/Edges/Compressors/Pipes/IncidenceMatrix).
// Determinism:
//   - Nodes() follows the construction order; it is the row order of IncidenceMatrix.
//   - Edges() follows the construction order; it is the column order of IncidenceMatrix.
//   - Pipes() and Compressors() keep that relative order.
// Concurrency:
//   - Topology is written once in New and never again; reads take no lock.
//   - Attribute collections are guarded by mu (see attributes.go).

package network

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/gasnet/matrix"
)

// Network is a gas transmission network: an immutable directed multigraph
// over integer ids with lazily initialised physical attributes.
type Network struct {
	// Topology (immutable after New).
	nodes       []NodeID
	nodeIndex   map[NodeID]int // NodeID → row
	edges       []Edge
	edgeIndex   map[EdgeID]int // EdgeID → column
	compressors []EdgeID       // construction order
	isComp      map[EdgeID]struct{}

	mu sync.RWMutex // guards every attribute collection below

	pMin, pMax attribute[NodeID]
	sMin, sMax attribute[NodeID]
	voll       attribute[NodeID]
	demand     attribute[NodeID]

	friction           attribute[EdgeID]
	alphaMin, alphaMax attribute[EdgeID]
	refFlows           attribute[EdgeID]

	compressionCost scalar
}

// New validates the topology and returns a Network with every attribute
// collection uninitialised.
//
// Validation order:
//  1. node ids are unique                              → ErrBadNodes
//  2. edge ids are unique                              → ErrBadEdges
//  3. both endpoints of every edge are listed in nodes → ErrDanglingEdge
//  4. compressor ids are unique                        → ErrBadEdges
//  5. every compressor matches an edge (id and ends)   → ErrDanglingEdge
//
// Every failure also matches ErrConstruction; no Network is returned.
// Membership is checked by set lookup only, so node id 0 is an ordinary id.
//
// Complexity: O(|N| + |E| + |C|) time and space.
func New(nodes []NodeID, edges []Edge, compressors []Edge) (*Network, error) {
	nodeIndex := make(map[NodeID]int, len(nodes))
	for i, id := range nodes {
		if _, dup := nodeIndex[id]; dup {
			return nil, constructionErrorf(ErrBadNodes, "duplicate node %d", id)
		}
		nodeIndex[id] = i
	}

	edgeIndex := make(map[EdgeID]int, len(edges))
	for j, e := range edges {
		if _, dup := edgeIndex[e.ID]; dup {
			return nil, constructionErrorf(ErrBadEdges, "duplicate edge %d", e.ID)
		}
		edgeIndex[e.ID] = j
	}

	for _, e := range edges {
		if _, ok := nodeIndex[e.From]; !ok {
			return nil, constructionErrorf(ErrDanglingEdge, "edge %s: unknown tail node %d", e, e.From)
		}
		if _, ok := nodeIndex[e.To]; !ok {
			return nil, constructionErrorf(ErrDanglingEdge, "edge %s: unknown head node %d", e, e.To)
		}
	}

	isComp := make(map[EdgeID]struct{}, len(compressors))
	compOrder := make([]EdgeID, 0, len(compressors))
	for _, c := range compressors {
		if _, dup := isComp[c.ID]; dup {
			return nil, constructionErrorf(ErrBadEdges, "duplicate compressor %d", c.ID)
		}
		j, ok := edgeIndex[c.ID]
		if !ok {
			return nil, constructionErrorf(ErrDanglingEdge, "compressor %s: no such edge", c)
		}
		if edges[j] != c {
			return nil, constructionErrorf(ErrDanglingEdge, "compressor %s: edge is defined as %s", c, edges[j])
		}
		isComp[c.ID] = struct{}{}
		compOrder = append(compOrder, c.ID)
	}

	n := &Network{
		nodes:       append([]NodeID(nil), nodes...),
		nodeIndex:   nodeIndex,
		edges:       append([]Edge(nil), edges...),
		edgeIndex:   edgeIndex,
		compressors: compOrder,
		isComp:      isComp,
	}
	n.initAttributes()

	return n, nil
}

// Nodes returns a copy of the node ids in construction order.
func (n *Network) Nodes() []NodeID {
	return append([]NodeID(nil), n.nodes...)
}

// Edges returns a copy of every edge (pipes and compressors) in construction order.
func (n *Network) Edges() []Edge {
	return append([]Edge(nil), n.edges...)
}

// NodeCount returns |N|.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns |E| (pipes and compressors).
func (n *Network) EdgeCount() int { return len(n.edges) }

// HasNode reports whether id is part of the topology.
func (n *Network) HasNode(id NodeID) bool {
	_, ok := n.nodeIndex[id]
	return ok
}

// Edge returns the edge with the given id.
func (n *Network) Edge(id EdgeID) (Edge, bool) {
	j, ok := n.edgeIndex[id]
	if !ok {
		return Edge{}, false
	}

	return n.edges[j], true
}

// NodeIndex returns the incidence row of id.
func (n *Network) NodeIndex(id NodeID) (int, bool) {
	i, ok := n.nodeIndex[id]
	return i, ok
}

// EdgeIndex returns the incidence column of id.
func (n *Network) EdgeIndex(id EdgeID) (int, bool) {
	j, ok := n.edgeIndex[id]
	return j, ok
}

// IsCompressor reports whether id is flagged as a compressor edge.
func (n *Network) IsCompressor(id EdgeID) bool {
	_, ok := n.isComp[id]
	return ok
}

// Compressors returns the compressor edges in the order they were given to New.
func (n *Network) Compressors() []Edge {
	out := make([]Edge, 0, len(n.compressors))
	for _, id := range n.compressors {
		out = append(out, n.edges[n.edgeIndex[id]])
	}

	return out
}

// Pipes returns the edges that are not compressors, in edge order.
// Computed on every call.
func (n *Network) Pipes() []Edge {
	out := make([]Edge, 0, len(n.edges)-len(n.isComp))
	for _, e := range n.edges {
		if _, comp := n.isComp[e.ID]; !comp {
			out = append(out, e)
		}
	}

	return out
}

// IncidenceMatrix returns the oriented |N|×|E| incidence matrix: entry (i,j)
// is +1 when edge j leaves Nodes()[i], −1 when it enters, 0 otherwise.
// A self-loop yields a zero column. The matrix is rebuilt on every call and
// owned by the caller.
//
// Complexity: O(|N|·|E|) time and space.
func (n *Network) IncidenceMatrix() *matrix.Dense {
	arcs := make([]matrix.Arc[NodeID], len(n.edges))
	for j, e := range n.edges {
		arcs[j] = matrix.Arc[NodeID]{Tail: e.From, Head: e.To}
	}
	m, err := matrix.BuildOriented(n.nodes, arcs)
	if err != nil {
		// New guarantees every endpoint is a listed node.
		panic(fmt.Sprintf("network: incidence of validated topology: %v", err))
	}

	return m
}
