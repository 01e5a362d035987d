package domain

import "fmt"

// Trace is the full timeline the viewer scrubs through: one graph and an ordered,
// non-empty sequence of snapshots over it.
type Trace struct {
	Name   string
	Graph  *Graph
	States []*ProofState
}

// NewTrace validates that every snapshot refers only to nodes of graph.
func NewTrace(name string, graph *Graph, states []*ProofState) (*Trace, error) {
	if graph == nil || graph.Size() == 0 {
		return nil, ErrEmptyGraph
	}
	if len(states) == 0 {
		return nil, ErrEmptyTrace
	}
	for i, s := range states {
		if s == nil {
			return nil, fmt.Errorf("state %d: nil snapshot", i)
		}
		for _, id := range s.nodes() {
			if !graph.Has(id) {
				return nil, fmt.Errorf("state %d: %w", i, &UnknownNodeError{Node: id})
			}
		}
	}

	copied := make([]*ProofState, len(states))
	copy(copied, states)
	return &Trace{Name: name, Graph: graph, States: copied}, nil
}

// Len returns the number of snapshots.
func (t *Trace) Len() int {
	return len(t.States)
}

// At returns the snapshot at index i.
func (t *Trace) At(i int) (*ProofState, error) {
	if i < 0 || i >= len(t.States) {
		return nil, fmt.Errorf("state index %d out of range [0, %d]", i, len(t.States)-1)
	}
	return t.States[i], nil
}
