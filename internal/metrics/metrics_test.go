package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/proofview/internal/metrics"
	"github.com/aretw0/proofview/pkg/domain"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter returns the value of the series of family name whose labels match want.
func counter(t *testing.T, c *metrics.Collector, name string, want map[string]string) float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m, want) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(m *dto.Metric, want map[string]string) bool {
	got := map[string]string{}
	for _, lp := range m.GetLabel() {
		got[lp.GetName()] = lp.GetValue()
	}
	for k, v := range want {
		if got[k] != v {
			return false
		}
	}
	return true
}

func TestHooks_Record(t *testing.T) {
	c := metrics.New()
	var chained int
	hooks := c.Hooks(domain.LifecycleHooks{
		OnRender: func(ctx context.Context, e *domain.RenderEvent) { chained++ },
	})
	ctx := context.Background()

	hooks.OnNavigate(ctx, &domain.NavigateEvent{Direction: domain.DirectionNext, From: 0, To: 1})
	hooks.OnNavigate(ctx, &domain.NavigateEvent{Direction: domain.DirectionNext, From: 4, To: 4})
	hooks.OnRender(ctx, &domain.RenderEvent{Duration: time.Millisecond})
	hooks.OnRender(ctx, &domain.RenderEvent{Duration: time.Millisecond})
	hooks.OnRenderFail(ctx, &domain.RenderEvent{Err: &domain.MissingFactError{Node: 1, Fact: domain.FactColor}})
	hooks.OnRenderFail(ctx, &domain.RenderEvent{Err: errors.New("disk full")})

	assert.Equal(t, 1.0, counter(t, c, "proofview_navigations_total", map[string]string{"direction": "next", "moved": "true"}))
	assert.Equal(t, 1.0, counter(t, c, "proofview_navigations_total", map[string]string{"direction": "next", "moved": "false"}))
	assert.Equal(t, 2.0, counter(t, c, "proofview_render_passes_total", nil))
	assert.Equal(t, 1.0, counter(t, c, "proofview_render_errors_total", map[string]string{"kind": metrics.KindContract}))
	assert.Equal(t, 1.0, counter(t, c, "proofview_render_errors_total", map[string]string{"kind": metrics.KindDraw}))
	assert.Equal(t, 2, chained)
}

func TestKind(t *testing.T) {
	assert.Equal(t, metrics.KindContract, metrics.Kind(fmt.Errorf("state 2: %w", &domain.UnknownNodeError{Node: 9})))
	assert.Equal(t, metrics.KindCanceled, metrics.Kind(context.Canceled))
	assert.Equal(t, metrics.KindDraw, metrics.Kind(io.ErrShortWrite))
}

func TestHandler_Exposition(t *testing.T) {
	c := metrics.New()
	c.Hooks(domain.LifecycleHooks{}).OnRender(context.Background(), &domain.RenderEvent{})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "proofview_render_passes_total 1")
}
