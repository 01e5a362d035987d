package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNavigate   EventType = "navigate"
	EventRender     EventType = "render"
	EventRenderFail EventType = "render_fail"
)

// Direction is the navigation action requested by the user.
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
	DirectionSeek     Direction = "seek"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NavigateEvent records one navigation call, including boundary no-ops.
type NavigateEvent struct {
	EventBase
	Direction Direction `json:"direction"`
	From      int       `json:"from"`
	To        int       `json:"to"`
}

// Moved reports whether the cursor changed.
func (e *NavigateEvent) Moved() bool {
	return e.From != e.To
}

// RenderEvent records the outcome of one render pass.
type RenderEvent struct {
	EventBase
	Cursor   int           `json:"cursor"`
	Nodes    int           `json:"nodes"`
	Edges    int           `json:"edges"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for viewer observability.
type LifecycleHooks struct {
	OnNavigate   func(context.Context, *NavigateEvent)
	OnRender     func(context.Context, *RenderEvent)
	OnRenderFail func(context.Context, *RenderEvent)
}
