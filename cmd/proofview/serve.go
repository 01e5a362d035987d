package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/proofview/internal/cli"
	"github.com/aretw0/proofview/internal/config"
	"github.com/aretw0/proofview/internal/metrics"
	"github.com/aretw0/proofview/internal/presentation/palette"
	httpAdapter "github.com/aretw0/proofview/pkg/adapters/http"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <trace>",
	Short: "Serve the viewer over HTTP",
	Long: `Starts the browser viewer. The page shows the current state with clickable
previous/next buttons and receives every redraw over Server-Sent Events.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		collector := metrics.New()

		var streams *httpAdapter.StreamManager
		setup, err := cli.CreateViewer(viewerOptions(cmd, args[0]), func(cfg *config.Config, p palette.Palette) ports.SceneRenderer {
			streams = httpAdapter.NewStreamManager(p)
			return streams
		}, collector.Hooks(domain.LifecycleHooks{}))
		if err != nil {
			fmt.Printf("Error initializing viewer: %v\n", err)
			os.Exit(1)
		}

		port := setup.Config.HTTP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		handler := httpAdapter.NewHandler(setup.Viewer,
			httpAdapter.WithStreams(streams),
			httpAdapter.WithPalette(setup.Palette),
			httpAdapter.WithMetrics(collector.Handler()),
		)

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting proofview on http://localhost%s\n", srv.Addr)
			fmt.Printf("Trace: %s (%d states)\n", setup.Viewer.Name, setup.Viewer.Trace().Len())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("proofview stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "Port to listen on (overrides the config file)")
}
