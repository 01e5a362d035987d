package ports

import (
	"context"

	"github.com/aretw0/proofview/pkg/scene"
)

// SceneRenderer draws a complete scene, replacing whatever it drew before.
type SceneRenderer interface {
	Draw(ctx context.Context, s *scene.Scene) error
}

// SceneRendererFunc adapts a function to SceneRenderer.
type SceneRendererFunc func(ctx context.Context, s *scene.Scene) error

// Draw calls f.
func (f SceneRendererFunc) Draw(ctx context.Context, s *scene.Scene) error {
	return f(ctx, s)
}
