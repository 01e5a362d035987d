package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/proofview/internal/cli"
	"github.com/aretw0/proofview/internal/presentation/tui"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <trace>",
	Short: "Print the facts of one state as a report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(cmd, args[0]); err != nil {
			fmt.Printf("Error inspecting trace: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Int("state", 1, "State to inspect (1-based)")
}

func runInspect(cmd *cobra.Command, tracePath string) error {
	index, _ := cmd.Flags().GetInt("state")

	setup, err := cli.CreateViewer(viewerOptions(cmd, tracePath), nil, domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	trace := setup.Viewer.Trace()
	state, err := trace.At(index - 1)
	if err != nil {
		return err
	}

	sc, err := setup.Viewer.Seek(context.Background(), index-1)
	if err != nil {
		return err
	}

	render := tui.NewRenderer()
	out, err := render(tui.Report(setup.Viewer.Name, state, sc))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
