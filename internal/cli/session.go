package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/proofview/internal/config"
	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/internal/presentation/tui"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/ports"
	"golang.org/x/term"
)

// ViewOptions configures the interactive "view" command.
type ViewOptions struct {
	ViewerOptions
	Headless bool
	Start    int // 0-based
}

// RunSession opens the trace and lets the user step through it until they quit.
// With a terminal on stdin, single keys drive navigation; otherwise the lifecycle router
// reads one command per line.
func RunSession(opts ViewOptions) error {
	fd := int(os.Stdin.Fd())
	interactive := !opts.Headless && term.IsTerminal(fd)

	var out io.Writer = os.Stdout
	if interactive {
		// Raw mode disables output post-processing.
		out = &crlfWriter{w: os.Stdout}
	}

	termOpts := []tui.TerminalOption{tui.WithClear(interactive)}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && interactive {
		termOpts = append(termOpts, tui.WithSize(w-2, h-8))
	}

	setup, err := CreateViewer(opts.ViewerOptions, func(cfg *config.Config, p palette.Palette) ports.SceneRenderer {
		return tui.NewTerminal(out, append(termOpts, tui.WithPalette(p))...)
	}, domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	// lifecycle owns SIGINT/SIGTERM; quitting cancels ctx as well.
	var sigCtx context.Context = lifecycle.NewSignalContext(context.Background())
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	session := &Session{Viewer: setup.Viewer, Out: out}

	mode := "lines"
	if interactive {
		mode = "keys"
	}
	router := createInteractiveRouter(ctx, session, mode, cancel)

	routerErrs := make(chan error, 1)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		err := router.Start(ctx)
		routerErrs <- err
		return err
	})

	if !interactive {
		tui.PrintBanner(os.Stdout)
		printSystemMessage(os.Stdout, "%s: %d states. Commands: next, previous, first, last, seek N, quit.", setup.Viewer.Name, setup.Viewer.Trace().Len())
		if err := session.Apply(ctx, CmdSeek, opts.Start); err != nil {
			return handleExecutionError(err)
		}
		for {
			select {
			case <-ctx.Done():
				return handleExecutionError(ctx.Err())
			case err := <-routerErrs:
				if err != nil {
					return handleExecutionError(err)
				}
			}
		}
	}

	in := io.Reader(os.Stdin)
	if r, err := lifecycle.UpgradeTerminal(os.Stdin); err == nil {
		in = r
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return handleExecutionError(RunKeys(ctx, setup.Viewer, opts.Start, in, out))
}

// Session applies navigation commands to a viewer. Failed passes are reported on Out and
// never end the session.
type Session struct {
	Viewer ports.Viewer
	Out    io.Writer
}

// Apply performs one command. Only cancellation is returned as an error.
func (s *Session) Apply(ctx context.Context, cmd Command, arg int) error {
	v := s.Viewer
	var err error
	switch cmd {
	case CmdNext:
		_, err = v.Next(ctx)
	case CmdPrevious:
		_, err = v.Previous(ctx)
	case CmdFirst:
		_, err = v.Seek(ctx, 0)
	case CmdLast:
		_, err = v.Seek(ctx, v.Trace().Len()-1)
	case CmdSeek:
		_, err = v.Seek(ctx, arg)
	case CmdRedraw:
		_, err = v.Render(ctx)
	default:
		return nil
	}
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	fmt.Fprintf(s.Out, "Error: %v\n", err)
	return nil
}

// HandleLine parses and applies one line command. It reports whether the line asked to quit.
func (s *Session) HandleLine(ctx context.Context, line string) (bool, error) {
	cmd, arg, err := ParseLine(line)
	if err != nil {
		fmt.Fprintf(s.Out, "Error: %v\n", err)
		return false, nil
	}
	if cmd == CmdQuit {
		return true, nil
	}
	return false, s.Apply(ctx, cmd, arg)
}

// RunKeys drives v from raw key presses read from in until quit, EOF or cancellation.
// Render errors are reported on out and the session continues.
// RunKeys owns in: when it implements io.Closer it is closed on return, which releases
// the reading goroutine.
func RunKeys(ctx context.Context, v ports.Viewer, start int, in io.Reader, out io.Writer) error {
	defer closeReader(in)

	s := &Session{Viewer: v, Out: out}
	if err := s.Apply(ctx, CmdSeek, start); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	chunks := make(chan []byte)
	errs := make(chan error, 1)
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				select {
				case chunks <- chunk:
				case <-done:
					return
				}
			}
			if err != nil {
				errs <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			return err
		case chunk := <-chunks:
			for _, cmd := range DecodeKeys(chunk) {
				if cmd == CmdQuit {
					return nil
				}
				if err := s.Apply(ctx, cmd, 0); err != nil {
					return err
				}
			}
		}
	}
}

func closeReader(r io.Reader) {
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
}

// crlfWriter translates "\n" into "\r\n" for terminals in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(c.w, s); err != nil {
		return 0, err
	}
	return len(p), nil
}
