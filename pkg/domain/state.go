package domain

import (
	"fmt"
	"strings"
)

// Color is an opaque display label, e.g. "red".
type Color string

// Reserved display colors.
const (
	ColorCovered  Color = "black"
	ColorNeutral  Color = "black"
	ColorInactive Color = "gray"
)

// Turn identifies the participant whose move a snapshot records.
type Turn int

const (
	TurnOther Turn = iota
	TurnProver
)

func (t Turn) String() string {
	switch t {
	case TurnProver:
		return "Prover"
	case TurnOther:
		return "Other"
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}

// ParseTurn maps a participant label to a Turn. Matching is case-insensitive.
func ParseTurn(label string) (Turn, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "prover":
		return TurnProver, nil
	case "other":
		return TurnOther, nil
	}
	return 0, fmt.Errorf("unknown turn owner %q", label)
}

// ProofState is one immutable snapshot of the proof: a color and a covered flag per node,
// plus the turn owner. Facts may be absent for a node if the upstream producer omitted them.
type ProofState struct {
	turn    Turn
	colors  map[NodeID]Color
	covered map[NodeID]bool
}

// NewProofState copies colors and covered into a new snapshot.
func NewProofState(turn Turn, colors map[NodeID]Color, covered map[NodeID]bool) *ProofState {
	s := &ProofState{
		turn:    turn,
		colors:  make(map[NodeID]Color, len(colors)),
		covered: make(map[NodeID]bool, len(covered)),
	}
	for k, v := range colors {
		s.colors[k] = v
	}
	for k, v := range covered {
		s.covered[k] = v
	}
	return s
}

// Turn returns the turn owner.
func (s *ProofState) Turn() Turn {
	return s.turn
}

// Color returns the recorded color of id and whether it was present.
func (s *ProofState) Color(id NodeID) (Color, bool) {
	c, ok := s.colors[id]
	return c, ok
}

// Covered returns the recorded covered flag of id and whether it was present.
func (s *ProofState) Covered(id NodeID) (bool, bool) {
	c, ok := s.covered[id]
	return c, ok
}

// nodes returns every node id named by any fact in the snapshot.
func (s *ProofState) nodes() []NodeID {
	seen := make(map[NodeID]struct{}, len(s.colors))
	var out []NodeID
	for id := range s.colors {
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for id := range s.covered {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
