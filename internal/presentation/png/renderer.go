// Package png rasterizes scenes into PNG images.
// Scenes are drawn at a multiple of their size and downsampled for smoother edges.
package png

import (
	"context"
	"fmt"
	"image"
	"image/color"
	imgpng "image/png"
	"io"
	"math"

	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/scene"
	"golang.org/x/image/draw"
)

// DefaultSupersample is the render multiplier applied before downsampling.
const DefaultSupersample = 4

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorButton     = color.RGBA{238, 238, 238, 255} // #eee
	colorButtonBdr  = color.RGBA{51, 51, 51, 255}    // #333
)

// Renderer writes one PNG image per render pass.
type Renderer struct {
	w       io.Writer
	palette palette.Palette
	scale   int
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithPalette overrides the label-to-color mapping.
func WithPalette(p palette.Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// WithSupersample sets the render multiplier. 1 disables supersampling.
func WithSupersample(n int) Option {
	return func(r *Renderer) {
		if n >= 1 {
			r.scale = n
		}
	}
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, palette: palette.Default(), scale: DefaultSupersample}
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
	img, err := r.Rasterize(sc)
	if err != nil {
		return err
	}
	return imgpng.Encode(r.w, img)
}

// Rasterize draws sc into an image of the scene's size.
func (r *Renderer) Rasterize(sc *scene.Scene) (*image.RGBA, error) {
	width, height := int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("png: invalid canvas %gx%g", sc.Width, sc.Height)
	}

	large := image.NewRGBA(image.Rect(0, 0, width*r.scale, height*r.scale))
	rc, err := newRenderContext(large, r.scale)
	if err != nil {
		return nil, err
	}
	draw.Draw(large, large.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	r.paint(rc, sc)

	if r.scale == 1 {
		return large, nil
	}
	final := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return final, nil
}

func (r *Renderer) paint(rc *renderContext, sc *scene.Scene) {
	s := rc.scale

	for _, e := range sc.Edges {
		drawLine(rc, e.From.X*s, e.From.Y*s, e.To.X*s, e.To.Y*s, r.palette.RGBA(e.Stroke))
	}

	labels := map[string]color.Color{}
	for _, n := range sc.Nodes {
		fill := r.palette.RGBA(n.Fill)
		drawDisc(rc, n.At.X*s, n.At.Y*s, n.Radius*s, fill)
		labels[n.Label] = r.palette.RGBA(domain.Color(r.palette.TextOn(n.Fill)))
	}

	for _, t := range sc.Texts {
		var c color.Color = color.Black
		if t.Role == scene.RoleNodeLabel {
			if lc, ok := labels[t.Content]; ok {
				c = lc
			}
		}
		drawText(rc, t.At.X*s, t.At.Y*s, t.Size, t.Content, c, false)
	}

	for _, reg := range sc.Regions {
		drawRect(rc, reg.Min.X*s, reg.Min.Y*s, reg.Max.X*s, reg.Max.Y*s, colorButton, colorButtonBdr)
		cx := (reg.Min.X + reg.Max.X) / 2
		cy := (reg.Min.Y + reg.Max.Y) / 2
		drawText(rc, cx*s, cy*s, 16, reg.Label, colorButtonBdr, true)
	}
}
