package instance_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/proofview/pkg/adapters/instance"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/facts"
	"github.com/aretw0/proofview/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoader_Contract(t *testing.T) {
	ports.RunTraceLoaderContract(t, instance.NewFileLoader("testdata/four_cycle.yaml"), 4, 3)
	ports.RunTraceLoaderContract(t, instance.NewFileLoader("testdata/triangle.json"), 3, 2)
}

func TestFileLoader_FourCycle(t *testing.T) {
	trace, err := instance.NewFileLoader("testdata/four_cycle.yaml").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "four-cycle", trace.Name)
	assert.Equal(t, []domain.Edge{
		domain.NewEdge(0, 1), domain.NewEdge(0, 3), domain.NewEdge(1, 2), domain.NewEdge(2, 3),
	}, trace.Graph.Edges())

	s0 := trace.States[0]
	assert.Equal(t, domain.TurnOther, s0.Turn())
	c, ok := s0.Color(1)
	require.True(t, ok)
	assert.Equal(t, domain.Color("red"), c)

	s1 := trace.States[1]
	assert.Equal(t, domain.TurnProver, s1.Turn())
	cov, ok := s1.Covered(0)
	require.True(t, ok)
	assert.True(t, cov)
	cov, ok = s1.Covered(3)
	require.True(t, ok, "list form marks unlisted nodes uncovered")
	assert.False(t, cov)

	s2 := trace.States[2]
	cov, _ = s2.Covered(2)
	assert.True(t, cov, "True0 label parses as covered")
}

func TestFileLoader_NameFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.yaml")
	content := []byte(`nodes: [Node0]
states:
  - turn: Prover0
    color: {Node0: Red0}
    covered: []
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	trace, err := instance.NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "unnamed", trace.Name)
	assert.Empty(t, trace.Graph.Edges())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		isErr   error
	}{
		{
			name:    "No Nodes",
			content: "states: [{turn: Prover0}]",
			isErr:   domain.ErrEmptyGraph,
		},
		{
			name:    "No States",
			content: "nodes: [Node0]",
			isErr:   domain.ErrEmptyTrace,
		},
		{
			name:    "Unknown Neighbor",
			content: "nodes: [Node0]\nneighbors: [[Node0, Node9]]\nstates: [{turn: Prover0}]",
		},
		{
			name:    "Unknown Turn",
			content: "nodes: [Node0]\nstates: [{turn: Referee0}]",
		},
		{
			name:    "Unknown Color Node",
			content: "nodes: [Node0]\nstates: [{turn: Other0, color: {Node7: Red0}}]",
		},
		{
			name:    "Bad Flag",
			content: "nodes: [Node0]\nstates: [{turn: Other0, covered: {Node0: maybe}}]",
		},
		{
			name:    "Duplicate Node",
			content: "nodes: [Node0, Node0]\nstates: [{turn: Other0}]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := instance.Parse([]byte(tt.content), "yaml")
			require.Error(t, err)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
		})
	}
}

func TestParse_MissingFactsSurviveLoading(t *testing.T) {
	// Gaps are a contract violation reported at render time, not silently defaulted.
	trace, err := instance.Parse([]byte("nodes: [Node0, Node1]\nstates: [{turn: Other0, color: {Node0: Red0}}]"), "yaml")
	require.NoError(t, err)

	_, ok := trace.States[0].Color(1)
	assert.False(t, ok)
	_, ok = trace.States[0].Covered(0)
	assert.False(t, ok)
}

func TestParse_NoneColorIsMissing(t *testing.T) {
	trace, err := instance.Parse([]byte("nodes: [Node0, Node1, Node2]\nstates: [{turn: Other0, covered: [], color: {Node0: none, Node1: None0, Node2: Blue0}}]"), "yaml")
	require.NoError(t, err)
	state := trace.States[0]

	for _, node := range []domain.NodeID{0, 1} {
		_, err := facts.ColorOf(trace.Graph, state, node)
		var missing *domain.MissingFactError
		require.ErrorAs(t, err, &missing, "node %d", node)
		assert.Equal(t, node, missing.Node)
	}

	c, err := facts.ColorOf(trace.Graph, state, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Color("blue"), c)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Red", instance.Atom("Red0"))
	assert.Equal(t, "Node", instance.Atom("Node12"))
	assert.Equal(t, domain.Color("blue"), instance.ColorOf("Blue3"))
	assert.Equal(t, domain.Color(""), instance.ColorOf("None0"))

	turn, err := instance.TurnOf("Prover0")
	require.NoError(t, err)
	assert.Equal(t, domain.TurnProver, turn)

	for in, want := range map[any]bool{true: true, "True0": true, "false": false, "No": false} {
		got, err := instance.FlagOf(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%v", in)
	}
	_, err = instance.FlagOf(3)
	assert.Error(t, err)
}
