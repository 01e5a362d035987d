package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/scene"
)

// Report builds a markdown summary of one snapshot: the raw facts next to the styles the
// scene resolved from them.
func Report(name string, state *domain.ProofState, sc *scene.Scene) string {
	var sb strings.Builder

	if name == "" {
		name = "trace"
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)
	fmt.Fprintf(&sb, "**%s** · %s\n\n", scene.StateDescription(sc.Cursor, sc.Total), scene.TurnDescription(sc.Turn))

	sb.WriteString("## Nodes\n\n")
	sb.WriteString("| Node | Color | Covered | Drawn as |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, n := range sc.Nodes {
		color := "-"
		if c, ok := state.Color(n.ID); ok && c != "" {
			color = string(c)
		}
		covered := "-"
		if v, ok := state.Covered(n.ID); ok {
			covered = fmt.Sprintf("%t", v)
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", n.Label, color, covered, n.Fill)
	}

	sb.WriteString("\n## Edges\n\n")
	if len(sc.Edges) == 0 {
		sb.WriteString("_No edges._\n")
		return sb.String()
	}
	sb.WriteString("| Edge | Drawn as |\n")
	sb.WriteString("|---|---|\n")
	for _, e := range sc.Edges {
		fmt.Fprintf(&sb, "| %s | %s |\n", e.Edge, e.Stroke)
	}
	return sb.String()
}
