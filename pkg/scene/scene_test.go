package scene

import (
	"testing"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/layout"
	"github.com/stretchr/testify/assert"
)

func TestScene_Hit(t *testing.T) {
	s := &Scene{
		Regions: []Region{
			{Action: ActionPrevious, Min: layout.Point{X: 0, Y: 0}, Max: layout.Point{X: 10, Y: 10}},
			{Action: ActionNext, Min: layout.Point{X: 20, Y: 0}, Max: layout.Point{X: 30, Y: 10}},
		},
	}

	act, ok := s.Hit(layout.Point{X: 5, Y: 5})
	assert.True(t, ok)
	assert.Equal(t, ActionPrevious, act)

	act, ok = s.Hit(layout.Point{X: 30, Y: 10})
	assert.True(t, ok)
	assert.Equal(t, ActionNext, act)

	_, ok = s.Hit(layout.Point{X: 15, Y: 5})
	assert.False(t, ok)
}

func TestScene_CommandsPaintOrder(t *testing.T) {
	s := &Scene{
		Edges:   []EdgeView{{Edge: domain.NewEdge(0, 1), Stroke: domain.ColorInactive}},
		Nodes:   []NodeView{{ID: 0, Fill: "red"}, {ID: 1, Fill: domain.ColorCovered}},
		Texts:   []Text{{Role: RoleTurn, Content: "Turn: Other"}},
		Regions: []Region{{Action: ActionNext, Label: "next"}},
	}

	cmds := s.Commands()
	kinds := make([]ShapeKind, len(cmds))
	for i, c := range cmds {
		kinds[i] = c.Kind
	}
	assert.Equal(t, []ShapeKind{ShapeLine, ShapeCircle, ShapeCircle, ShapeText, ShapeButton}, kinds)
	assert.Equal(t, domain.ColorInactive, cmds[0].Color)
}

func TestDescriptions(t *testing.T) {
	assert.Equal(t, "Turn: Prover", TurnDescription(domain.TurnProver))
	assert.Equal(t, "State 1 / 5", StateDescription(0, 5))
}
