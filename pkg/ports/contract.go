package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTraceLoaderContract runs a suite of tests to verify that a TraceLoader implementation
// yields a trace satisfying the viewer's invariants.
func RunTraceLoaderContract(t *testing.T, loader TraceLoader, wantNodes, wantStates int) {
	ctx := context.Background()

	trace, err := loader.Load(ctx)
	require.NoError(t, err, "Load should not return error")
	require.NotNil(t, trace)

	t.Run("Shape", func(t *testing.T) {
		assert.Equal(t, wantNodes, trace.Graph.Size())
		assert.Equal(t, wantStates, trace.Len())
	})

	t.Run("Symmetric Adjacency", func(t *testing.T) {
		for _, id := range trace.Graph.Nodes() {
			for _, n := range trace.Graph.Neighbors(id) {
				assert.NotEqual(t, id, n, "self loop on %d", id)
				assert.True(t, trace.Graph.Adjacent(n, id), "edge %d-%d not symmetric", id, n)
			}
		}
	})

	t.Run("Facts Complete", func(t *testing.T) {
		for i, s := range trace.States {
			for _, id := range trace.Graph.Nodes() {
				_, ok := s.Color(id)
				assert.True(t, ok, "state %d node %d has no color", i, id)
				_, ok = s.Covered(id)
				assert.True(t, ok, "state %d node %d has no covered flag", i, id)
			}
		}
	})

	t.Run("Stable", func(t *testing.T) {
		again, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, trace.Graph.Edges(), again.Graph.Edges())
		assert.Equal(t, trace.Len(), again.Len())
		for i := range trace.States {
			assert.Equal(t, trace.States[i].Turn(), again.States[i].Turn())
		}
	})
}
