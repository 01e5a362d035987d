package png

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// renderContext holds the target image and the font faces used while painting.
type renderContext struct {
	img       *image.RGBA
	scale     float64
	lineWidth float64
	font      *opentype.Font
	faces     map[float64]font.Face
}

func newRenderContext(img *image.RGBA, scale int) (*renderContext, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("png: parse font: %w", err)
	}
	return &renderContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale) * 2,
		font:      fnt,
		faces:     map[float64]font.Face{},
	}, nil
}

// face returns a face for size points, scaled to the render multiplier.
func (rc *renderContext) face(size float64) font.Face {
	if f, ok := rc.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(rc.font, &opentype.FaceOptions{
		Size:    size * rc.scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		// Only fails for non-positive sizes.
		f, _ = opentype.NewFace(rc.font, &opentype.FaceOptions{Size: 12 * rc.scale, DPI: 72})
	}
	rc.faces[size] = f
	return f
}

// drawDisc fills a circle.
func drawDisc(rc *renderContext, cx, cy, r float64, fill color.Color) {
	for dy := -r; dy <= r; dy++ {
		yNorm := dy / r
		if yNorm*yNorm > 1 {
			continue
		}
		xExtent := r * math.Sqrt(1-yNorm*yNorm)
		for dx := -xExtent; dx <= xExtent; dx++ {
			rc.img.Set(int(cx+dx), int(cy+dy), fill)
		}
	}
}

// drawLine draws a line between two points with the context's thickness.
func drawLine(rc *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}
	halfThick := rc.lineWidth / 2

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				rc.img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	perpX := -dy / dist
	perpY := dx / dist
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := x1 + dx*t
		py := y1 + dy*t
		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			rc.img.Set(int(px+perpX*offset), int(py+perpY*offset), c)
		}
	}
}

// drawRect fills a rectangle and outlines it.
func drawRect(rc *renderContext, x1, y1, x2, y2 float64, fill, stroke color.Color) {
	for y := int(y1); y <= int(y2); y++ {
		for x := int(x1); x <= int(x2); x++ {
			rc.img.Set(x, y, fill)
		}
	}
	drawLine(rc, x1, y1, x2, y1, stroke)
	drawLine(rc, x2, y1, x2, y2, stroke)
	drawLine(rc, x2, y2, x1, y2, stroke)
	drawLine(rc, x1, y2, x1, y1, stroke)
}

// drawText draws text horizontally centered on x. y is the baseline, or the vertical
// center when middle is set.
func drawText(rc *renderContext, x, y, size float64, text string, c color.Color, middle bool) {
	face := rc.face(size)
	width := font.MeasureString(face, text)

	baseline := y
	if middle {
		baseline += float64(face.Metrics().Ascent.Ceil()) * 0.35
	}

	d := &font.Drawer{
		Dst:  rc.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(x)) - width/2,
			Y: fixed.I(int(baseline)),
		},
	}
	d.DrawString(text)
}
