package ports

import (
	"context"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/scene"
)

// Viewer is the navigation and rendering surface consumed by host adapters (HTTP, MCP, CLI).
// Every navigation call triggers exactly one render pass and returns its scene.
type Viewer interface {
	// Render runs a render pass at the current cursor.
	Render(ctx context.Context) (*scene.Scene, error)

	// Next advances the cursor (no-op at the last state) and re-renders.
	Next(ctx context.Context) (*scene.Scene, error)

	// Previous moves the cursor back (no-op at the first state) and re-renders.
	Previous(ctx context.Context) (*scene.Scene, error)

	// Seek moves the cursor to a clamped index and re-renders.
	Seek(ctx context.Context, index int) (*scene.Scene, error)

	// Dispatch runs the navigation bound to a scene action (ActionNext, ActionPrevious).
	Dispatch(ctx context.Context, action scene.Action) (*scene.Scene, error)

	// Cursor returns the current index.
	Cursor() int

	// Trace returns the loaded trace.
	Trace() *domain.Trace
}
