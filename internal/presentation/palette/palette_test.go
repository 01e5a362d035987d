package palette_test

import (
	"image/color"
	"testing"

	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestPalette_Reserved(t *testing.T) {
	p := palette.Default()
	assert.Equal(t, "#000000", p.Hex(domain.ColorCovered))
	assert.Equal(t, "#000000", p.Hex(domain.ColorNeutral))
	assert.Equal(t, "#9e9e9e", p.Hex(domain.ColorInactive))
	assert.Equal(t, color.RGBA{A: 255}, p.RGBA(domain.ColorCovered))
}

func TestPalette_With(t *testing.T) {
	p := palette.Default().With(map[string]string{
		"Red":   "#cc0000",
		"teal":  "#008080",
		"bogus": "not a color",
	})

	assert.Equal(t, "#cc0000", p.Hex("red"))
	assert.Equal(t, "#008080", p.Hex("teal"))
	_, ok := p["bogus"]
	assert.False(t, ok)

	// The receiver is not modified.
	assert.Equal(t, "#e53935", palette.Default().Hex("red"))
}

func TestPalette_UnknownLabels(t *testing.T) {
	p := palette.Default()

	assert.Equal(t, "#123456", p.Hex("#123456"))

	// Stable across calls, distinct across labels.
	assert.Equal(t, p.Hex("magenta-ish"), p.Hex("magenta-ish"))
	assert.NotEqual(t, p.Hex("alpha"), p.Hex("omega"))
}

func TestPalette_TextOn(t *testing.T) {
	p := palette.Default()
	assert.Equal(t, "#ffffff", p.TextOn(domain.ColorCovered))
	assert.Equal(t, "#000000", p.TextOn("yellow"))
	assert.Equal(t, "#000000", p.TextOn("white"))
}
