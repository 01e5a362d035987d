package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/proofview/pkg/adapters/instance"
	"github.com/aretw0/proofview/pkg/domain"
)

// Loader implements ports.TraceLoader over an already built trace.
type Loader struct {
	trace *domain.Trace
}

// NewLoader wraps a trace.
func NewLoader(trace *domain.Trace) *Loader {
	return &Loader{trace: trace}
}

// NewFromDocument builds the trace from an instance document.
// This handles normalization automatically, improving DX for tests and embedding.
func NewFromDocument(doc *instance.Document) (*Loader, error) {
	trace, err := instance.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build trace: %w", err)
	}
	return &Loader{trace: trace}, nil
}

// Load returns the wrapped trace.
func (l *Loader) Load(ctx context.Context) (*domain.Trace, error) {
	if l.trace == nil {
		return nil, domain.ErrEmptyTrace
	}
	return l.trace, nil
}
