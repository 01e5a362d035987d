// Package palette maps color labels from proof states to concrete display colors.
package palette

import (
	"hash/fnv"
	"image/color"
	"strings"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps color labels to "#rrggbb" values.
type Palette map[domain.Color]string

// Default covers the reserved colors and the labels the model finder usually emits.
func Default() Palette {
	return Palette{
		"black":  "#000000",
		"gray":   "#9e9e9e",
		"grey":   "#9e9e9e",
		"white":  "#ffffff",
		"red":    "#e53935",
		"green":  "#43a047",
		"blue":   "#1e88e5",
		"yellow": "#fdd835",
		"orange": "#fb8c00",
		"purple": "#8e24aa",
		"pink":   "#d81b60",
		"cyan":   "#00acc1",
		"brown":  "#6d4c41",
	}
}

// With returns a copy of p with overrides applied. Keys are lower-cased; values that do
// not parse as hex colors are ignored.
func (p Palette) With(overrides map[string]string) Palette {
	out := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		if _, err := colorful.Hex(v); err != nil {
			continue
		}
		out[domain.Color(strings.ToLower(k))] = v
	}
	return out
}

// Lookup returns the concrete color for a label.
// Labels missing from the palette that are themselves hex colors are used as-is; any other
// label gets a stable hue derived from its name so distinct labels stay distinguishable.
func (p Palette) Lookup(c domain.Color) colorful.Color {
	if hex, ok := p[c]; ok {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	h := fnv.New32a()
	h.Write([]byte(c))
	return colorful.Hsv(float64(h.Sum32()%360), 0.65, 0.85)
}

// Hex returns the "#rrggbb" form of a label.
func (p Palette) Hex(c domain.Color) string {
	return p.Lookup(c).Hex()
}

// RGBA returns an opaque image color for a label.
func (p Palette) RGBA(c domain.Color) color.RGBA {
	r, g, b := p.Lookup(c).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// TextOn returns black or white, whichever reads better on top of c.
func (p Palette) TextOn(c domain.Color) string {
	l, _, _ := p.Lookup(c).Lab()
	if l < 0.55 {
		return "#ffffff"
	}
	return "#000000"
}
