package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the proofview ASCII art banner.
func PrintBanner(w io.Writer) {
	p := termenv.NewOutput(w).ColorProfile()
	// Cool-to-warm gradient, mirroring uncovered-to-covered nodes
	lines := []struct {
		text string
		hex  string
	}{
		{"                        __         _               ", "#38bdf8"},
		{"   ____  _________  ___/ _|_   __ (_) _____      __", "#60a5fa"},
		{"  / __ \\/ ___/ __ \\/ _ \\ |\\ \\ / / | |/ _ \\ \\ /\\ / /", "#818cf8"},
		{" / /_/ / /  / /_/ / (_) | | \\ V /  | |  __/\\ V  V / ", "#a78bfa"},
		{"/ .___/_/   \\____/\\___/|_|  \\_/   |_|\\___| \\_/\\_/  ", "#c084fc"},
		{"/_/                                                ", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.hex)))
	}
	fmt.Fprintln(w)
}
