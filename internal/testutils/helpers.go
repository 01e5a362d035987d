package testutils

import (
	"testing"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/stretchr/testify/require"
)

// StateSpec is a compact snapshot description for tests: one color per node, the
// indices of covered nodes, and the turn owner.
type StateSpec struct {
	Turn    domain.Turn
	Colors  []domain.Color
	Covered []domain.NodeID
}

// Build converts the spec into a snapshot with a covered flag for every colored node.
func (s StateSpec) Build() *domain.ProofState {
	colors := make(map[domain.NodeID]domain.Color, len(s.Colors))
	covered := make(map[domain.NodeID]bool, len(s.Colors))
	for i, c := range s.Colors {
		colors[domain.NodeID(i)] = c
		covered[domain.NodeID(i)] = false
	}
	for _, id := range s.Covered {
		covered[id] = true
	}
	return domain.NewProofState(s.Turn, colors, covered)
}

// CycleGraph returns the cycle 0-1-...-(n-1)-0.
// It fails the test immediately on error.
func CycleGraph(t *testing.T, n int) *domain.Graph {
	t.Helper()

	var edges []domain.Edge
	for i := 0; i < n; i++ {
		edges = append(edges, domain.NewEdge(domain.NodeID(i), domain.NodeID((i+1)%n)))
	}
	g, err := domain.NewGraph(n, edges...)
	require.NoError(t, err, "Failed to build cycle graph")
	return g
}

// CycleTrace builds a trace over an n-cycle from the given specs.
func CycleTrace(t *testing.T, n int, specs ...StateSpec) *domain.Trace {
	t.Helper()

	states := make([]*domain.ProofState, len(specs))
	for i, s := range specs {
		states[i] = s.Build()
	}
	trace, err := domain.NewTrace("cycle", CycleGraph(t, n), states)
	require.NoError(t, err, "Failed to build trace")
	return trace
}

// FiveStateCycle is a 4-cycle whose coverage grows by one node per state and whose
// turn alternates, starting with Other.
func FiveStateCycle(t *testing.T) *domain.Trace {
	t.Helper()

	colors := []domain.Color{"red", "blue", "red", "blue"}
	return CycleTrace(t, 4,
		StateSpec{Turn: domain.TurnOther, Colors: colors},
		StateSpec{Turn: domain.TurnProver, Colors: colors, Covered: []domain.NodeID{0}},
		StateSpec{Turn: domain.TurnOther, Colors: colors, Covered: []domain.NodeID{0, 2}},
		StateSpec{Turn: domain.TurnProver, Colors: colors, Covered: []domain.NodeID{0, 1, 2}},
		StateSpec{Turn: domain.TurnOther, Colors: colors, Covered: []domain.NodeID{0, 1, 2, 3}},
	)
}
