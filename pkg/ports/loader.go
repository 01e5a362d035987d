package ports

import (
	"context"

	"github.com/aretw0/proofview/pkg/domain"
)

// TraceLoader defines how the viewer obtains the sequence it displays.
// The trace is loaded once; the viewer never writes it back.
type TraceLoader interface {
	// Load returns the full, validated trace.
	Load(ctx context.Context) (*domain.Trace, error)
}
