package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/proofview/internal/cli"
	"github.com/aretw0/proofview/internal/logging"
	"github.com/aretw0/proofview/pkg/adapters/mcp"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp <trace>",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the viewer as an MCP server so agents can step through a trace.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		setup, err := cli.CreateViewer(viewerOptions(cmd, args[0]), nil, domain.LifecycleHooks{})
		if err != nil {
			log.Fatalf("Error initializing viewer: %v", err)
		}

		slog.SetDefault(logging.New(slog.LevelDebug))

		srv := mcp.NewServer(setup.Viewer, setup.Palette)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			slog.Info("Starting proofview MCP Server (Stdio)...", "trace", setup.Viewer.Name)
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting proofview MCP Server (SSE)", "port", port, "trace", setup.Viewer.Name)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("MCP Server execution failed", "err", err)
				os.Exit(1)
			}
			slog.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
}
