package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/proofview/internal/logging"
	"github.com/aretw0/proofview/pkg/domain"
)

// CreateLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout frames).
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// CreateDebugHooks logs every navigation and render pass.
func CreateDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNavigate: func(ctx context.Context, e *domain.NavigateEvent) {
			logger.Debug("Navigate", "direction", e.Direction, "from", e.From, "to", e.To, "moved", e.Moved())
		},
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			logger.Debug("Render", "cursor", e.Cursor, "nodes", e.Nodes, "edges", e.Edges, "duration", e.Duration)
		},
		OnRenderFail: func(ctx context.Context, e *domain.RenderEvent) {
			logger.Debug("Render Failed", "cursor", e.Cursor, "err", e.Err)
		},
	}
}

// ChainHooks calls a then b for every event.
func ChainHooks(a, b domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNavigate: func(ctx context.Context, e *domain.NavigateEvent) {
			if a.OnNavigate != nil {
				a.OnNavigate(ctx, e)
			}
			if b.OnNavigate != nil {
				b.OnNavigate(ctx, e)
			}
		},
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			if a.OnRender != nil {
				a.OnRender(ctx, e)
			}
			if b.OnRender != nil {
				b.OnRender(ctx, e)
			}
		},
		OnRenderFail: func(ctx context.Context, e *domain.RenderEvent) {
			if a.OnRenderFail != nil {
				a.OnRenderFail(ctx, e)
			}
			if b.OnRenderFail != nil {
				b.OnRenderFail(ctx, e)
			}
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

// handleExecutionError treats interruptions as a clean exit.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}
