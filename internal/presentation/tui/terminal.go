package tui

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/scene"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Glyphs used on the character grid.
const (
	GlyphNode = '●'
	GlyphEdge = '·'
)

// Default grid size. Terminal cells are about twice as tall as wide.
const (
	DefaultCols = 64
	DefaultRows = 28
)

type cell struct {
	r     rune
	color domain.Color
	bold  bool
}

// Terminal draws scenes onto a character grid.
type Terminal struct {
	w       io.Writer
	out     *termenv.Output
	lg      *lipgloss.Renderer
	palette palette.Palette
	cols    int
	rows    int
	clear   bool
}

// TerminalOption configures the Terminal renderer.
type TerminalOption func(*Terminal)

// WithSize sets the grid size in cells.
func WithSize(cols, rows int) TerminalOption {
	return func(t *Terminal) {
		if cols > 0 && rows > 0 {
			t.cols, t.rows = cols, rows
		}
	}
}

// WithClear clears the screen before each frame.
func WithClear(clear bool) TerminalOption {
	return func(t *Terminal) {
		t.clear = clear
	}
}

// WithPalette overrides the label-to-color mapping.
func WithPalette(p palette.Palette) TerminalOption {
	return func(t *Terminal) {
		t.palette = p
	}
}

// NewTerminal creates a terminal renderer writing to w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		w:       w,
		out:     termenv.NewOutput(w),
		lg:      lipgloss.NewRenderer(w),
		palette: palette.Default(),
		cols:    DefaultCols,
		rows:    DefaultRows,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Draw implements ports.SceneRenderer.
func (t *Terminal) Draw(ctx context.Context, sc *scene.Scene) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.clear {
		t.out.ClearScreen()
	}
	_, err := io.WriteString(t.w, t.Frame(sc))
	return err
}

// Frame returns the full text of one frame: status, graph grid, controls.
func (t *Terminal) Frame(sc *scene.Scene) string {
	grid := make([][]cell, t.rows)
	for y := range grid {
		grid[y] = make([]cell, t.cols)
	}

	toCell := func(x, y float64) (int, int) {
		cx := int(math.Round(x / sc.Width * float64(t.cols-1)))
		cy := int(math.Round(y / sc.Height * float64(t.rows-1)))
		return clamp(cx, 0, t.cols-1), clamp(cy, 0, t.rows-1)
	}

	for _, e := range sc.Edges {
		x1, y1 := toCell(e.From.X, e.From.Y)
		x2, y2 := toCell(e.To.X, e.To.Y)
		steps := max(abs(x2-x1), abs(y2-y1))
		for i := 1; i < steps; i++ {
			x := x1 + int(math.Round(float64((x2-x1)*i)/float64(steps)))
			y := y1 + int(math.Round(float64((y2-y1)*i)/float64(steps)))
			grid[y][x] = cell{r: GlyphEdge, color: e.Stroke}
		}
	}

	for _, n := range sc.Nodes {
		x, y := toCell(n.At.X, n.At.Y)
		grid[y][x] = cell{r: GlyphNode, color: n.Fill, bold: n.Covered}
		for i, r := range n.Label {
			if x+1+i < t.cols {
				grid[y][x+1+i] = cell{r: r, bold: true}
			}
		}
	}

	var sb strings.Builder
	title := t.lg.NewStyle().Bold(true)
	sb.WriteString(title.Render(scene.TurnDescription(sc.Turn)))
	sb.WriteString("   ")
	sb.WriteString(scene.StateDescription(sc.Cursor, sc.Total))
	sb.WriteString("\n\n")

	for _, row := range grid {
		for _, c := range row {
			if c.r == 0 {
				sb.WriteByte(' ')
				continue
			}
			style := t.lg.NewStyle().Bold(c.bold)
			if c.color != "" {
				style = style.Foreground(lipgloss.Color(t.palette.Hex(c.color)))
			}
			sb.WriteString(style.Render(string(c.r)))
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	sb.WriteString(t.controls(sc))
	sb.WriteByte('\n')
	return sb.String()
}

func (t *Terminal) controls(sc *scene.Scene) string {
	button := t.lg.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	var parts []string
	for _, r := range sc.Regions {
		key := "n/→"
		if r.Action == scene.ActionPrevious {
			key = "p/←"
		}
		parts = append(parts, button.Render(fmt.Sprintf("%s %s", key, r.Label)))
	}
	parts = append(parts, button.Render("q quit"))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
