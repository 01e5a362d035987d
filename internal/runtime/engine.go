package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/layout"
	"github.com/aretw0/proofview/pkg/navigator"
	"github.com/aretw0/proofview/pkg/ports"
	"github.com/aretw0/proofview/pkg/scene"
)

// Engine owns the cursor over a trace and runs render passes.
// Navigation and rendering are serialized: each call completes its redraw before the next
// one starts, so no partial scene is ever observable.
type Engine struct {
	trace    *domain.Trace
	layout   *layout.Layout
	nav      *navigator.Navigator
	geometry scene.Geometry
	center   layout.Point
	radius   float64
	renderer ports.SceneRenderer
	hooks    domain.LifecycleHooks
	logger   *slog.Logger

	mu sync.Mutex
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRenderer sets the scene renderer invoked at the end of every successful pass.
func WithRenderer(r ports.SceneRenderer) EngineOption {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithGeometry overrides the frame dimensions.
func WithGeometry(g scene.Geometry) EngineOption {
	return func(e *Engine) {
		e.geometry = g
	}
}

// WithCircle overrides the layout circle.
func WithCircle(center layout.Point, radius float64) EngineOption {
	return func(e *Engine) {
		e.center = center
		e.radius = radius
	}
}

// NewEngine validates the trace and computes the layout once.
func NewEngine(trace *domain.Trace, opts ...EngineOption) (*Engine, error) {
	if trace == nil {
		return nil, domain.ErrEmptyTrace
	}

	e := &Engine{
		trace:    trace,
		geometry: scene.DefaultGeometry(),
		center:   layout.Point{X: layout.DefaultCenterX, Y: layout.DefaultCenterY},
		radius:   layout.DefaultRadius,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	if trace.Graph == nil {
		return nil, domain.ErrEmptyGraph
	}
	l, err := layout.Circular(trace.Graph.Size(), e.center, e.radius)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	e.layout = l

	nav, err := navigator.New(trace.Len())
	if err != nil {
		return nil, err
	}
	e.nav = nav

	e.logger.Debug("engine ready", "trace", trace.Name, "nodes", trace.Graph.Size(), "states", trace.Len())
	return e, nil
}

// Trace returns the trace being viewed.
func (e *Engine) Trace() *domain.Trace {
	return e.trace
}

// Layout returns the fixed node positions.
func (e *Engine) Layout() *layout.Layout {
	return e.layout
}

// Cursor returns the current index.
func (e *Engine) Cursor() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nav.Current()
}

// Render runs a render pass at the current cursor.
func (e *Engine) Render(ctx context.Context) (*scene.Scene, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pass(ctx)
}

// Next advances the cursor and re-renders. At the last state the cursor is unchanged
// but the redraw still happens.
func (e *Engine) Next(ctx context.Context) (*scene.Scene, error) {
	return e.navigate(ctx, domain.DirectionNext, func(n *navigator.Navigator) { n.Next() })
}

// Previous moves the cursor back and re-renders.
func (e *Engine) Previous(ctx context.Context) (*scene.Scene, error) {
	return e.navigate(ctx, domain.DirectionPrevious, func(n *navigator.Navigator) { n.Previous() })
}

// Seek moves the cursor to index, clamped, and re-renders.
func (e *Engine) Seek(ctx context.Context, index int) (*scene.Scene, error) {
	return e.navigate(ctx, domain.DirectionSeek, func(n *navigator.Navigator) { n.Seek(index) })
}

// Dispatch maps a click-region action to a navigation call.
func (e *Engine) Dispatch(ctx context.Context, action scene.Action) (*scene.Scene, error) {
	switch action {
	case scene.ActionNext:
		return e.Next(ctx)
	case scene.ActionPrevious:
		return e.Previous(ctx)
	}
	return nil, fmt.Errorf("unknown action %q", action)
}

func (e *Engine) navigate(ctx context.Context, dir domain.Direction, move func(*navigator.Navigator)) (*scene.Scene, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	from := e.nav.Current()
	move(e.nav)
	ev := &domain.NavigateEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNavigate},
		Direction: dir,
		From:      from,
		To:        e.nav.Current(),
	}
	e.logger.Debug("navigate", "direction", dir, "from", ev.From, "to", ev.To)
	if e.hooks.OnNavigate != nil {
		e.hooks.OnNavigate(ctx, ev)
	}

	return e.pass(ctx)
}

// pass must be called with mu held.
func (e *Engine) pass(ctx context.Context) (*scene.Scene, error) {
	start := time.Now()
	cursor := e.nav.Current()

	sc, err := e.compose(cursor)
	if err == nil && e.renderer != nil {
		if drawErr := e.renderer.Draw(ctx, sc); drawErr != nil {
			err = fmt.Errorf("draw state %d: %w", cursor, drawErr)
		}
	}

	ev := &domain.RenderEvent{
		EventBase: domain.EventBase{Timestamp: time.Now()},
		Cursor:    cursor,
		Duration:  time.Since(start),
		Err:       err,
	}

	if err != nil {
		ev.Type = domain.EventRenderFail
		e.logger.Error("render pass failed", "cursor", cursor, "error", err)
		if e.hooks.OnRenderFail != nil {
			e.hooks.OnRenderFail(ctx, ev)
		}
		return nil, err
	}

	ev.Type = domain.EventRender
	ev.Nodes = len(sc.Nodes)
	ev.Edges = len(sc.Edges)
	e.logger.Debug("render pass", "cursor", cursor, "nodes", ev.Nodes, "edges", ev.Edges, "duration", ev.Duration)
	if e.hooks.OnRender != nil {
		e.hooks.OnRender(ctx, ev)
	}
	return sc, nil
}

func (e *Engine) compose(cursor int) (*scene.Scene, error) {
	state, err := e.trace.At(cursor)
	if err != nil {
		return nil, err
	}
	sc, err := Compose(e.trace.Graph, state, e.layout, e.geometry, cursor, e.trace.Len())
	if err != nil {
		return nil, fmt.Errorf("state %d: %w", cursor, err)
	}
	return sc, nil
}
