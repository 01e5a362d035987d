package main

import (
	"fmt"
	"os"

	"github.com/aretw0/proofview/internal/cli"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <trace>",
	Short: "Check that every state of a trace can be drawn",
	Long:  `Loads the trace and composes a frame for every state, reporting unknown nodes and missing facts.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Trace is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, tracePath string) error {
	setup, err := cli.CreateViewer(viewerOptions(cmd, tracePath), nil, domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	return cli.ValidateTrace(setup.Viewer.Trace(), setup.Viewer.Layout(), setup.Config.Canvas)
}
