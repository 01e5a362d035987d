package main

import (
	"fmt"
	"os"

	"github.com/aretw0/proofview/internal/cli"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <trace>",
	Short: "Step through a trace in the terminal",
	Long: `Opens a trace and draws the current snapshot in the terminal.
Use n/→ and p/← to move, g/G for the first and last state, q to quit.
Without a terminal (or with --headless) commands are read one per line.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")
		state, _ := cmd.Flags().GetInt("state")

		opts := cli.ViewOptions{
			ViewerOptions: viewerOptions(cmd, args[0]),
			Headless:      headless,
			Start:         state - 1,
		}

		if err := cli.RunSession(opts); err != nil {
			fmt.Printf("Error running viewer: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().Bool("headless", false, "Read line commands from stdin instead of raw keys")
	viewCmd.Flags().Int("state", 1, "State to show first (1-based)")
}
