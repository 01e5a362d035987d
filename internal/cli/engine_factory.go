package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/proofview"
	"github.com/aretw0/proofview/internal/config"
	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/ports"
)

// ViewerOptions is what every command needs to open a trace.
type ViewerOptions struct {
	TracePath  string
	ConfigPath string
	Debug      bool
}

// Setup is a viewer together with the configuration it was built from.
type Setup struct {
	Viewer  *proofview.Viewer
	Config  *config.Config
	Palette palette.Palette
	Logger  *slog.Logger
}

// RendererFactory builds the renderer once the configuration is known.
type RendererFactory func(cfg *config.Config, p palette.Palette) ports.SceneRenderer

// CreateViewer loads the configuration and the trace with standard CLI conventions.
// newRenderer may be nil for a viewer that only returns scenes.
func CreateViewer(opts ViewerOptions, newRenderer RendererFactory, hooks domain.LifecycleHooks) (*Setup, error) {
	logger := CreateLogger(opts.Debug)

	// 1. Configuration
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	pal := palette.Default().With(cfg.Palette)

	var renderer ports.SceneRenderer
	if newRenderer != nil {
		renderer = newRenderer(cfg, pal)
	}

	// 2. Hooks
	if opts.Debug {
		hooks = ChainHooks(CreateDebugHooks(logger), hooks)
	}

	// 3. Initialize
	viewer, err := proofview.New(opts.TracePath,
		proofview.WithLogger(logger),
		proofview.WithLifecycleHooks(hooks),
		proofview.WithRenderer(renderer),
		proofview.WithGeometry(cfg.Canvas),
		proofview.WithCircle(cfg.Center(), cfg.Layout.Radius),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing viewer: %w", err)
	}

	return &Setup{
		Viewer:  viewer,
		Config:  cfg,
		Palette: pal,
		Logger:  logger,
	}, nil
}
