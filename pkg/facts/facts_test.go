package facts_test

import (
	"testing"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/facts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cycle4(t *testing.T) *domain.Graph {
	t.Helper()
	g, err := domain.NewGraph(4,
		domain.NewEdge(0, 1), domain.NewEdge(1, 2),
		domain.NewEdge(2, 3), domain.NewEdge(3, 0),
	)
	require.NoError(t, err)
	return g
}

func TestExtract_KnownNode(t *testing.T) {
	g := cycle4(t)
	s := domain.NewProofState(domain.TurnOther,
		map[domain.NodeID]domain.Color{0: "red", 1: "blue", 2: "red", 3: "blue"},
		map[domain.NodeID]bool{0: true, 1: false, 2: true, 3: false},
	)

	c, err := facts.ColorOf(g, s, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Color("blue"), c)

	cov, err := facts.CoveredOf(g, s, 0)
	require.NoError(t, err)
	assert.True(t, cov)

	assert.Equal(t, domain.TurnOther, facts.TurnOf(s))

	nbrs, err := facts.NeighborsOf(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.NodeID{1, 3}, nbrs)
}

func TestExtract_UnknownNode(t *testing.T) {
	g := cycle4(t)
	s := domain.NewProofState(domain.TurnProver, nil, nil)

	for _, id := range []domain.NodeID{-1, 4, 99} {
		_, err := facts.ColorOf(g, s, id)
		var unknown *domain.UnknownNodeError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, id, unknown.Node)

		_, err = facts.CoveredOf(g, s, id)
		assert.ErrorAs(t, err, &unknown)

		_, err = facts.NeighborsOf(g, id)
		assert.ErrorAs(t, err, &unknown)
	}
}

func TestExtract_MissingFact(t *testing.T) {
	g := cycle4(t)
	s := domain.NewProofState(domain.TurnOther,
		map[domain.NodeID]domain.Color{0: "red"},
		map[domain.NodeID]bool{0: false},
	)

	_, err := facts.ColorOf(g, s, 2)
	var missing *domain.MissingFactError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.FactColor, missing.Fact)
	assert.Equal(t, domain.NodeID(2), missing.Node)

	_, err = facts.CoveredOf(g, s, 3)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.FactCovered, missing.Fact)
}

func TestExtract_Pure(t *testing.T) {
	g := cycle4(t)
	colors := map[domain.NodeID]domain.Color{0: "red", 1: "blue", 2: "red", 3: "blue"}
	s := domain.NewProofState(domain.TurnOther, colors, map[domain.NodeID]bool{0: true, 1: true, 2: true, 3: true})

	// Mutating the constructor input must not leak into the snapshot.
	colors[0] = "green"

	first, err := facts.ColorOf(g, s, 0)
	require.NoError(t, err)
	second, err := facts.ColorOf(g, s, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, domain.Color("red"), first)
}
