package cli

import (
	"context"

	"github.com/aretw0/lifecycle"
)

// createInteractiveRouter creates the lifecycle router for a viewing session.
//
// Mode options:
//   - "lines": the router reads stdin; each line is a command, q/quit/exit shut down
//   - "keys": no router input (raw keys are read by RunKeys), signals only
func createInteractiveRouter(ctx context.Context, s *Session, mode string, shutdown func()) *lifecycle.Router {
	var routerOpts []lifecycle.InteractiveOption

	// A. Input Bridge: Lifecycle -> Session
	routerOpts = append(routerOpts, lifecycle.WithDefaultHandler(lineHandler(s, shutdown)))

	// B. Signal Bridge: Ctrl-C in line mode ends the session
	routerOpts = append(routerOpts, lifecycle.WithInterruptHandler(lifecycle.HandlerFunc(func(ctx context.Context, _ lifecycle.Event) error {
		printSystemMessage(s.Out, "Interrupted.")
		shutdown()
		return nil
	})))

	// C. Shutdown Bridge: Lifecycle -> Context Cancellation
	routerOpts = append(routerOpts, lifecycle.WithShutdown(func() {
		lifecycle.Shutdown(ctx)
		shutdown()
	}))

	switch mode {
	case "keys":
		routerOpts = append(routerOpts, lifecycle.WithInput(false))
	default:
		routerOpts = append(routerOpts,
			lifecycle.WithInputOptions(
				lifecycle.WithInputMappings(map[string]lifecycle.Event{
					"q":    lifecycle.ShutdownEvent{Reason: "manual"},
					"quit": lifecycle.ShutdownEvent{Reason: "manual"},
					"exit": lifecycle.ShutdownEvent{Reason: "manual"},
				}),
			),
		)
	}

	return lifecycle.NewInteractiveRouter(routerOpts...)
}

// lineHandler feeds every input event to the session as a line command.
func lineHandler(s *Session, shutdown func()) lifecycle.HandlerFunc {
	return lifecycle.HandlerFunc(func(ctx context.Context, e lifecycle.Event) error {
		var line string
		switch ev := e.(type) {
		case lifecycle.InputEvent:
			line = ev.Command
		case lifecycle.LineEvent:
			line = ev.Line
		case lifecycle.UnknownCommandEvent:
			line = ev.Command
		default:
			return lifecycle.ErrNotHandled
		}

		quit, err := s.HandleLine(ctx, line)
		if quit {
			shutdown()
		}
		return err
	})
}
