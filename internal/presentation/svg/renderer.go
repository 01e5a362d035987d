// Package svg draws scenes as standalone SVG documents.
package svg

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/pkg/scene"
)

// Renderer writes one SVG document per render pass.
type Renderer struct {
	w       io.Writer
	palette palette.Palette
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithPalette overrides the label-to-color mapping.
func WithPalette(p palette.Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, palette: palette.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw implements ports.SceneRenderer.
func (r *Renderer) Draw(ctx context.Context, sc *scene.Scene) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := r.w.Write(Encode(sc, r.palette))
	return err
}

// Encode returns the SVG document for sc. Click regions are emitted as groups carrying a
// data-action attribute so a host page can bind them.
func Encode(sc *scene.Scene, p palette.Palette) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g" font-family="sans-serif">`+"\n",
		sc.Width, sc.Height, sc.Width, sc.Height)
	fmt.Fprintf(&b, `  <rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")

	b.WriteString(`  <g class="edges" stroke-width="2">` + "\n")
	for _, e := range sc.Edges {
		fmt.Fprintf(&b, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" data-edge="%s"/>`+"\n",
			e.From.X, e.From.Y, e.To.X, e.To.Y, p.Hex(e.Stroke), e.Edge)
	}
	b.WriteString("  </g>\n")

	labels := map[string]string{}
	for _, n := range sc.Nodes {
		labels[n.Label] = p.TextOn(n.Fill)
	}

	b.WriteString(`  <g class="nodes">` + "\n")
	for _, n := range sc.Nodes {
		fmt.Fprintf(&b, `    <circle cx="%.2f" cy="%.2f" r="%g" fill="%s" data-node="%d" data-covered="%t"/>`+"\n",
			n.At.X, n.At.Y, n.Radius, p.Hex(n.Fill), n.ID, n.Covered)
	}
	b.WriteString("  </g>\n")

	b.WriteString(`  <g class="texts" text-anchor="middle">` + "\n")
	for _, t := range sc.Texts {
		fill := "#000000"
		if t.Role == scene.RoleNodeLabel {
			fill = labels[t.Content]
		}
		fmt.Fprintf(&b, `    <text x="%.2f" y="%.2f" font-size="%g" fill="%s" class="%s">%s</text>`+"\n",
			t.At.X, t.At.Y, t.Size, fill, t.Role, escape(t.Content))
	}
	b.WriteString("  </g>\n")

	b.WriteString(`  <g class="controls">` + "\n")
	for _, r := range sc.Regions {
		w, h := r.Max.X-r.Min.X, r.Max.Y-r.Min.Y
		fmt.Fprintf(&b, `    <g class="region" data-action="%s" cursor="pointer">`+"\n", r.Action)
		fmt.Fprintf(&b, `      <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="6" fill="#eeeeee" stroke="#333333"/>`+"\n",
			r.Min.X, r.Min.Y, w, h)
		fmt.Fprintf(&b, `      <text x="%.2f" y="%.2f" font-size="16" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			r.Min.X+w/2, r.Min.Y+h/2, escape(r.Label))
		b.WriteString("    </g>\n")
	}
	b.WriteString("  </g>\n")

	b.WriteString("</svg>\n")
	return b.Bytes()
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
