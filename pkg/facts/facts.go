// Package facts reads per-node and per-snapshot facts out of proof states.
// Every function is a pure read of immutable data.
package facts

import "github.com/aretw0/proofview/pkg/domain"

// ColorOf returns the recorded color of node in state.
func ColorOf(g *domain.Graph, state *domain.ProofState, node domain.NodeID) (domain.Color, error) {
	if !g.Has(node) {
		return "", &domain.UnknownNodeError{Node: node}
	}
	c, ok := state.Color(node)
	if !ok || c == "" {
		return "", &domain.MissingFactError{Node: node, Fact: domain.FactColor}
	}
	return c, nil
}

// CoveredOf returns whether node is covered in state.
func CoveredOf(g *domain.Graph, state *domain.ProofState, node domain.NodeID) (bool, error) {
	if !g.Has(node) {
		return false, &domain.UnknownNodeError{Node: node}
	}
	c, ok := state.Covered(node)
	if !ok {
		return false, &domain.MissingFactError{Node: node, Fact: domain.FactCovered}
	}
	return c, nil
}

// TurnOf returns the turn owner of state.
func TurnOf(state *domain.ProofState) domain.Turn {
	return state.Turn()
}

// NeighborsOf returns the neighbors of node in g.
func NeighborsOf(g *domain.Graph, node domain.NodeID) ([]domain.NodeID, error) {
	if !g.Has(node) {
		return nil, &domain.UnknownNodeError{Node: node}
	}
	return g.Neighbors(node), nil
}
