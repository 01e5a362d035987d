// Package metrics exposes render and navigation counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Error kinds recorded on proofview_render_errors_total.
const (
	KindContract = "contract"
	KindCanceled = "canceled"
	KindDraw     = "draw"
)

// Collector owns a registry with the viewer's collectors.
type Collector struct {
	registry    *prometheus.Registry
	passes      prometheus.Counter
	errors      *prometheus.CounterVec
	navigations *prometheus.CounterVec
	duration    prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "proofview_render_passes_total",
			Help: "Total number of successful render passes",
		}),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "proofview_render_errors_total",
				Help: "Total number of failed render passes",
			},
			[]string{"kind"},
		),
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "proofview_navigations_total",
				Help: "Total number of navigation requests, including boundary no-ops",
			},
			[]string{"direction", "moved"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "proofview_render_duration_seconds",
			Help:    "Duration of render passes",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	c.registry.MustRegister(c.passes, c.errors, c.navigations, c.duration)
	return c
}

// Registry returns the registry the collectors live on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that record into the collectors.
// next, if set, is called after recording so hooks can be chained.
func (c *Collector) Hooks(next domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNavigate: func(ctx context.Context, e *domain.NavigateEvent) {
			c.navigations.WithLabelValues(string(e.Direction), strconv.FormatBool(e.Moved())).Inc()
			if next.OnNavigate != nil {
				next.OnNavigate(ctx, e)
			}
		},
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			c.passes.Inc()
			c.duration.Observe(e.Duration.Seconds())
			if next.OnRender != nil {
				next.OnRender(ctx, e)
			}
		},
		OnRenderFail: func(ctx context.Context, e *domain.RenderEvent) {
			c.errors.WithLabelValues(Kind(e.Err)).Inc()
			c.duration.Observe(e.Duration.Seconds())
			if next.OnRenderFail != nil {
				next.OnRenderFail(ctx, e)
			}
		},
	}
}

// Kind classifies a render error for the "kind" label.
func Kind(err error) string {
	switch {
	case domain.IsContractViolation(err):
		return KindContract
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindDraw
	}
}
