package main

import (
	"fmt"
	"os"

	"github.com/aretw0/proofview/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "proofview",
	Short: "proofview steps through graph-coloring proof traces",
	Long: `proofview renders the snapshots of a graph-coloring game found by a model finder.
Each snapshot shows which player moves next, which nodes are covered and which edges are still live.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "proofview.yaml", "Viewer configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

// viewerOptions reads the persistent flags shared by every command that opens a trace.
func viewerOptions(cmd *cobra.Command, tracePath string) cli.ViewerOptions {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.ViewerOptions{
		TracePath:  tracePath,
		ConfigPath: configPath,
		Debug:      debug,
	}
}
