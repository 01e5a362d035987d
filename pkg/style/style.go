// Package style derives display colors for nodes and edges from a snapshot.
//
// Both resolvers are pure: they take the snapshot and identities as parameters, capture
// no context, and are re-evaluated on every render pass.
package style

import (
	"fmt"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/facts"
)

// NodeColor returns the fill of node. Covered nodes are drawn in the reserved covered color
// regardless of their underlying color.
func NodeColor(g *domain.Graph, state *domain.ProofState, node domain.NodeID) (domain.Color, error) {
	covered, err := facts.CoveredOf(g, state, node)
	if err != nil {
		return "", err
	}
	if covered {
		return domain.ColorCovered, nil
	}
	return facts.ColorOf(g, state, node)
}

// EdgeColor returns the stroke of the edge between a and b.
//
//	turn=Prover                 -> neutral
//	turn=Other, neither covered -> inactive
//	turn=Other, any covered     -> neutral
func EdgeColor(g *domain.Graph, state *domain.ProofState, a, b domain.NodeID) (domain.Color, error) {
	if !g.Has(a) {
		return "", &domain.UnknownNodeError{Node: a}
	}
	if !g.Has(b) {
		return "", &domain.UnknownNodeError{Node: b}
	}

	switch turn := facts.TurnOf(state); turn {
	case domain.TurnProver:
		return domain.ColorNeutral, nil
	case domain.TurnOther:
		coveredA, err := facts.CoveredOf(g, state, a)
		if err != nil {
			return "", err
		}
		coveredB, err := facts.CoveredOf(g, state, b)
		if err != nil {
			return "", err
		}
		if !coveredA && !coveredB {
			return domain.ColorInactive, nil
		}
		return domain.ColorNeutral, nil
	default:
		return "", fmt.Errorf("unhandled turn owner %v", turn)
	}
}
