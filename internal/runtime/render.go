package runtime

import (
	"strconv"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/layout"
	"github.com/aretw0/proofview/pkg/scene"
	"github.com/aretw0/proofview/pkg/style"
)

// Compose resolves every node and edge of state into a fresh scene.
// It fails on the first extraction error; no partial scene is returned.
func Compose(g *domain.Graph, state *domain.ProofState, l *layout.Layout, geo scene.Geometry, cursor, total int) (*scene.Scene, error) {
	sc := &scene.Scene{
		Width:   geo.Width,
		Height:  geo.Height,
		Cursor:  cursor,
		Total:   total,
		Turn:    state.Turn(),
		TurnTag: state.Turn().String(),
	}

	for _, edge := range g.Edges() {
		stroke, err := style.EdgeColor(g, state, edge.A, edge.B)
		if err != nil {
			return nil, err
		}
		from, err := l.Position(edge.A)
		if err != nil {
			return nil, err
		}
		to, err := l.Position(edge.B)
		if err != nil {
			return nil, err
		}
		sc.Edges = append(sc.Edges, scene.EdgeView{Edge: edge, From: from, To: to, Stroke: stroke})
	}

	for _, id := range g.Nodes() {
		fill, err := style.NodeColor(g, state, id)
		if err != nil {
			return nil, err
		}
		covered, _ := state.Covered(id)
		at, err := l.Position(id)
		if err != nil {
			return nil, err
		}
		label := strconv.Itoa(int(id))
		sc.Nodes = append(sc.Nodes, scene.NodeView{
			ID:      id,
			At:      at,
			Radius:  geo.NodeRadius,
			Fill:    fill,
			Covered: covered,
			Label:   label,
		})
		sc.Texts = append(sc.Texts, scene.Text{
			Role:    scene.RoleNodeLabel,
			At:      layout.Point{X: at.X, Y: at.Y + geo.LabelOffset},
			Size:    geo.LabelSize,
			Content: label,
		})
	}

	mid := geo.Width / 2
	sc.Texts = append(sc.Texts,
		scene.Text{Role: scene.RoleTurn, At: layout.Point{X: mid, Y: 40}, Size: geo.StatusSize, Content: scene.TurnDescription(state.Turn())},
		scene.Text{Role: scene.RoleStateIndex, At: layout.Point{X: mid, Y: 70}, Size: geo.StatusSize, Content: scene.StateDescription(cursor, total)},
	)

	sc.Regions = []scene.Region{
		{
			Action: scene.ActionPrevious,
			Min:    layout.Point{X: 20, Y: geo.Height - 60},
			Max:    layout.Point{X: 140, Y: geo.Height - 20},
			Label:  "previous",
		},
		{
			Action: scene.ActionNext,
			Min:    layout.Point{X: geo.Width - 140, Y: geo.Height - 60},
			Max:    layout.Point{X: geo.Width - 20, Y: geo.Height - 20},
			Label:  "next",
		},
	}

	return sc, nil
}
