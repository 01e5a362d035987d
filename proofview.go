package proofview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/proofview/internal/runtime"
	"github.com/aretw0/proofview/pkg/adapters/instance"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/layout"
	"github.com/aretw0/proofview/pkg/ports"
	"github.com/aretw0/proofview/pkg/scene"
)

// Viewer is the high-level entry point for the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Viewer struct {
	runtime     *runtime.Engine
	loader      ports.TraceLoader
	renderer    ports.SceneRenderer
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	runtimeOpts []runtime.EngineOption
	Name        string
}

// Option defines a functional option for configuring the Viewer.
type Option func(*Viewer)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(v *Viewer) {
		v.hooks = hooks
	}
}

// WithLoader injects a custom TraceLoader, bypassing the default instance file loader.
func WithLoader(l ports.TraceLoader) Option {
	return func(v *Viewer) {
		v.loader = l
	}
}

// WithRenderer sets the scene renderer invoked on every render pass.
func WithRenderer(r ports.SceneRenderer) Option {
	return func(v *Viewer) {
		v.renderer = r
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Viewer) {
		v.logger = logger
	}
}

// WithGeometry overrides the frame dimensions.
func WithGeometry(g scene.Geometry) Option {
	return func(v *Viewer) {
		v.runtimeOpts = append(v.runtimeOpts, runtime.WithGeometry(g))
	}
}

// WithCircle overrides the layout circle (default center 300,300 and radius 150).
func WithCircle(center layout.Point, radius float64) Option {
	return func(v *Viewer) {
		v.runtimeOpts = append(v.runtimeOpts, runtime.WithCircle(center, radius))
	}
}

// New initializes a Viewer.
// By default, it loads the instance file at tracePath.
// If WithLoader option is provided, tracePath can be empty.
func New(tracePath string, opts ...Option) (*Viewer, error) {
	return NewContext(context.Background(), tracePath, opts...)
}

// NewContext is New with a context for the initial load.
func NewContext(ctx context.Context, tracePath string, opts ...Option) (*Viewer, error) {
	v := &Viewer{}

	// Apply Options first to check if a loader is provided
	for _, opt := range opts {
		opt(v)
	}

	if v.loader == nil {
		if tracePath == "" {
			return nil, fmt.Errorf("tracePath is required when no custom loader is provided")
		}
		absPath, err := filepath.Abs(tracePath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		v.loader = instance.NewFileLoader(absPath)
	}

	if v.logger == nil {
		v.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	trace, err := v.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trace: %w", err)
	}
	v.Name = trace.Name
	if v.Name != "" {
		v.logger = v.logger.With("trace", v.Name)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(v.hooks),
		runtime.WithLogger(v.logger),
		runtime.WithRenderer(v.renderer),
	}
	runtimeOpts = append(runtimeOpts, v.runtimeOpts...)

	v.runtime, err = runtime.NewEngine(trace, runtimeOpts...)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Render redraws the scene at the current cursor.
func (v *Viewer) Render(ctx context.Context) (*scene.Scene, error) {
	return v.runtime.Render(ctx)
}

// Next advances one state and redraws. At the last state it only redraws.
func (v *Viewer) Next(ctx context.Context) (*scene.Scene, error) {
	return v.runtime.Next(ctx)
}

// Previous steps back one state and redraws. At the first state it only redraws.
func (v *Viewer) Previous(ctx context.Context) (*scene.Scene, error) {
	return v.runtime.Previous(ctx)
}

// Seek jumps to index (clamped) and redraws.
func (v *Viewer) Seek(ctx context.Context, index int) (*scene.Scene, error) {
	return v.runtime.Seek(ctx, index)
}

// Dispatch performs the navigation bound to a click region.
func (v *Viewer) Dispatch(ctx context.Context, action scene.Action) (*scene.Scene, error) {
	return v.runtime.Dispatch(ctx, action)
}

// Cursor returns the index of the displayed state.
func (v *Viewer) Cursor() int {
	return v.runtime.Cursor()
}

// Trace returns the loaded trace for introspection.
func (v *Viewer) Trace() *domain.Trace {
	return v.runtime.Trace()
}

// Layout returns the fixed node positions.
func (v *Viewer) Layout() *layout.Layout {
	return v.runtime.Layout()
}

// Loader returns the TraceLoader used by the viewer.
func (v *Viewer) Loader() ports.TraceLoader {
	return v.loader
}

var _ ports.Viewer = (*Viewer)(nil)
