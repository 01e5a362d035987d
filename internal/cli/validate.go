package cli

import (
	"errors"
	"fmt"

	"github.com/aretw0/proofview/internal/runtime"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/layout"
	"github.com/aretw0/proofview/pkg/scene"
)

// ValidateTrace composes a scene for every state without navigating and returns one error
// per state that cannot be drawn.
func ValidateTrace(trace *domain.Trace, l *layout.Layout, geo scene.Geometry) error {
	var errs []error
	for i, state := range trace.States {
		if _, err := runtime.Compose(trace.Graph, state, l, geo, i, trace.Len()); err != nil {
			errs = append(errs, fmt.Errorf("state %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}
