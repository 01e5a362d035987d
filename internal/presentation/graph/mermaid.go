package graph

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/scene"
)

// GenerateMermaid produces a Mermaid flowchart for one scene.
// It applies the resolved styles:
// - Node: ((Circle)) filled with its derived color
// - Covered node: thick outline on top of the covered fill
// - Edge: undirected link stroked with its derived color
// The status lines are emitted as comments so the diagram stays self-describing.
func GenerateMermaid(sc *scene.Scene, p palette.Palette) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString(fmt.Sprintf("    %%%% %s | %s\n", scene.TurnDescription(sc.Turn), scene.StateDescription(sc.Cursor, sc.Total)))

	for _, n := range sc.Nodes {
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", mermaidID(n.ID), sanitizeLabel(n.Label)))
	}

	for _, e := range sc.Edges {
		sb.WriteString(fmt.Sprintf("    %s --- %s\n", mermaidID(e.Edge.A), mermaidID(e.Edge.B)))
	}

	// Class per fill color
	sb.WriteString("\n    %% Styles\n")
	classes := map[domain.Color][]string{}
	var covered []string
	for _, n := range sc.Nodes {
		classes[n.Fill] = append(classes[n.Fill], mermaidID(n.ID))
		if n.Covered {
			covered = append(covered, mermaidID(n.ID))
		}
	}
	fills := make([]domain.Color, 0, len(classes))
	for c := range classes {
		fills = append(fills, c)
	}
	sort.Slice(fills, func(i, j int) bool { return fills[i] < fills[j] })

	for _, c := range fills {
		name := className(c)
		sb.WriteString(fmt.Sprintf("    classDef %s fill:%s,stroke:#333,color:%s;\n", name, p.Hex(c), p.TextOn(c)))
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", strings.Join(classes[c], ","), name))
	}
	if len(covered) > 0 {
		sb.WriteString("    classDef covered stroke:#000,stroke-width:4px;\n")
		sb.WriteString(fmt.Sprintf("    class %s covered;\n", strings.Join(covered, ",")))
	}

	// Link order matches edge declaration order
	for i, e := range sc.Edges {
		sb.WriteString(fmt.Sprintf("    linkStyle %d stroke:%s,stroke-width:2px;\n", i, p.Hex(e.Stroke)))
	}

	return sb.String()
}

// Renderer writes a Mermaid diagram per render pass.
type Renderer struct {
	w       io.Writer
	palette palette.Palette
}

// NewRenderer creates a renderer writing to w with palette p.
func NewRenderer(w io.Writer, p palette.Palette) *Renderer {
	if p == nil {
		p = palette.Default()
	}
	return &Renderer{w: w, palette: p}
}

// Draw implements ports.SceneRenderer.
func (r *Renderer) Draw(ctx context.Context, sc *scene.Scene) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, GenerateMermaid(sc, r.palette))
	return err
}

func mermaidID(id domain.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

func className(c domain.Color) string {
	return "c_" + sanitizeMermaidID(string(c))
}

func sanitizeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "#", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
