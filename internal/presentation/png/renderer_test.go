package png_test

import (
	"bytes"
	"context"
	"image/color"
	imgpng "image/png"
	"testing"

	"github.com/aretw0/proofview/internal/presentation/png"
	"github.com/aretw0/proofview/internal/runtime"
	"github.com/aretw0/proofview/internal/testutils"
	"github.com/aretw0/proofview/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderAt(t *testing.T, cursor int) *scene.Scene {
	t.Helper()
	engine, err := runtime.NewEngine(testutils.FiveStateCycle(t))
	require.NoError(t, err)
	sc, err := engine.Seek(context.Background(), cursor)
	require.NoError(t, err)
	return sc
}

func TestRenderer_Draw(t *testing.T) {
	var buf bytes.Buffer
	r := png.NewRenderer(&buf, png.WithSupersample(2))
	require.NoError(t, r.Draw(context.Background(), renderAt(t, 0)))

	img, err := imgpng.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestRenderer_Pixels(t *testing.T) {
	sc := renderAt(t, 1)
	img, err := png.NewRenderer(nil, png.WithSupersample(1)).Rasterize(sc)
	require.NoError(t, err)

	// Background corner.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(2, 2))

	// Node 0 is covered in state 1; sample inside the disc away from its label.
	n0 := sc.Nodes[0]
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(int(n0.At.X), int(n0.At.Y-n0.Radius/2)))

	// Node 1 keeps its blue fill.
	n1 := sc.Nodes[1]
	assert.Equal(t, color.RGBA{0x1e, 0x88, 0xe5, 255}, img.RGBAAt(int(n1.At.X), int(n1.At.Y-n1.Radius/2)))
}

func TestRenderer_InvalidCanvas(t *testing.T) {
	sc := renderAt(t, 0)
	sc.Width = 0
	_, err := png.NewRenderer(nil).Rasterize(sc)
	assert.Error(t, err)
}
