package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/proofview/internal/cli"
	"github.com/aretw0/proofview/internal/config"
	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/ports"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <trace>",
	Short: "Render a single state to a file",
	Long: `Draws one snapshot of a trace without starting a session.
The format defaults to the output file extension, or svg when writing to stdout.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRender(cmd, args[0]); err != nil {
			fmt.Printf("Error rendering trace: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Int("state", 1, "State to render (1-based)")
	renderCmd.Flags().StringP("format", "f", "", "Output format: svg, png, mermaid, json or text")
	renderCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}

func runRender(cmd *cobra.Command, tracePath string) error {
	state, _ := cmd.Flags().GetInt("state")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	if format == "" {
		format = "svg"
		if guessed, ok := cli.FormatFromPath(output); ok {
			format = guessed
		}
	}
	format, err := cli.ParseFormat(format)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	setup, err := cli.CreateViewer(viewerOptions(cmd, tracePath), func(cfg *config.Config, p palette.Palette) ports.SceneRenderer {
		// The format was checked above.
		r, _ := cli.NewFormatRenderer(format, w, p)
		return r
	}, domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	total := setup.Viewer.Trace().Len()
	if state < 1 || state > total {
		return fmt.Errorf("state %d out of range 1..%d", state, total)
	}

	// Seeking performs the single render pass that writes the frame.
	_, err = setup.Viewer.Seek(context.Background(), state-1)
	return err
}
