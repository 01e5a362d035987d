package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/proofview/internal/presentation/graph"
	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/internal/presentation/png"
	"github.com/aretw0/proofview/internal/presentation/svg"
	"github.com/aretw0/proofview/internal/presentation/tui"
	"github.com/aretw0/proofview/pkg/ports"
	"github.com/aretw0/proofview/pkg/scene"
)

// Formats accepted by "render".
var Formats = []string{"svg", "png", "mermaid", "json", "text"}

// ParseFormat normalizes a format name, accepting "mmd" for mermaid.
func ParseFormat(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "mmd" {
		name = "mermaid"
	}
	for _, f := range Formats {
		if f == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (supported: %s)", name, strings.Join(Formats, ", "))
}

// NewFormatRenderer returns the renderer for a named output format.
func NewFormatRenderer(format string, w io.Writer, p palette.Palette) (ports.SceneRenderer, error) {
	format, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch format {
	case "svg":
		return svg.NewRenderer(w, svg.WithPalette(p)), nil
	case "png":
		return png.NewRenderer(w, png.WithPalette(p)), nil
	case "mermaid":
		return graph.NewRenderer(w, p), nil
	case "json":
		return ports.SceneRendererFunc(func(ctx context.Context, sc *scene.Scene) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(sc)
		}), nil
	}
	return tui.NewTerminal(w, tui.WithPalette(p)), nil
}

// FormatFromPath guesses the format from an output file extension.
func FormatFromPath(path string) (string, bool) {
	switch {
	case strings.HasSuffix(path, ".svg"):
		return "svg", true
	case strings.HasSuffix(path, ".png"):
		return "png", true
	case strings.HasSuffix(path, ".mmd"), strings.HasSuffix(path, ".mermaid"):
		return "mermaid", true
	case strings.HasSuffix(path, ".json"):
		return "json", true
	case strings.HasSuffix(path, ".txt"):
		return "text", true
	}
	return "", false
}
