package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/proofview"
	"github.com/aretw0/proofview/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of proofview",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(os.Stdout)
		fmt.Printf("proofview version %s\n", strings.TrimSpace(proofview.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
