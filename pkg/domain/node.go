package domain

import (
	"fmt"
	"sort"
)

// NodeID is the stable index of a node, in 0..N-1.
type NodeID int

// Edge is an unordered pair of adjacent nodes, normalized so that A < B.
type Edge struct {
	A NodeID `json:"a" yaml:"a"`
	B NodeID `json:"b" yaml:"b"`
}

// NewEdge returns the normalized edge between a and b.
func NewEdge(a, b NodeID) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.A, e.B)
}

// Graph is the state-invariant structure of the game: node identities and adjacency.
// It is immutable after construction.
type Graph struct {
	size      int
	adjacency map[NodeID]map[NodeID]struct{}
	edges     []Edge
}

// NewGraph builds a graph of size nodes from a list of adjacent pairs.
// Pairs are treated as unordered and duplicates collapse. Self loops are dropped.
func NewGraph(size int, pairs ...Edge) (*Graph, error) {
	if size <= 0 {
		return nil, ErrEmptyGraph
	}

	g := &Graph{
		size:      size,
		adjacency: make(map[NodeID]map[NodeID]struct{}, size),
	}
	for i := 0; i < size; i++ {
		g.adjacency[NodeID(i)] = make(map[NodeID]struct{})
	}

	seen := make(map[Edge]struct{}, len(pairs))
	for _, p := range pairs {
		if !g.Has(p.A) {
			return nil, &UnknownNodeError{Node: p.A}
		}
		if !g.Has(p.B) {
			return nil, &UnknownNodeError{Node: p.B}
		}
		if p.A == p.B {
			continue
		}
		e := NewEdge(p.A, p.B)
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		g.adjacency[e.A][e.B] = struct{}{}
		g.adjacency[e.B][e.A] = struct{}{}
		g.edges = append(g.edges, e)
	}

	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].A != g.edges[j].A {
			return g.edges[i].A < g.edges[j].A
		}
		return g.edges[i].B < g.edges[j].B
	})

	return g, nil
}

// Size returns the number of nodes.
func (g *Graph) Size() int {
	return g.size
}

// Has reports whether id belongs to the fixed node set.
func (g *Graph) Has(id NodeID) bool {
	return id >= 0 && int(id) < g.size
}

// Nodes returns every node identity in ascending order.
func (g *Graph) Nodes() []NodeID {
	ids := make([]NodeID, g.size)
	for i := range ids {
		ids[i] = NodeID(i)
	}
	return ids
}

// Neighbors returns the sorted neighbor identities of id, or nil if id is unknown.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]NodeID, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Adjacent reports whether a and b share an edge.
func (g *Graph) Adjacent(a, b NodeID) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// Edges returns every edge exactly once, sorted by (A, B).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}
