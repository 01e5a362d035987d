package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/internal/presentation/svg"
	"github.com/aretw0/proofview/pkg/scene"
)

// Frame is the payload pushed to SSE subscribers after every render pass.
type Frame struct {
	Cursor int    `json:"cursor"`
	Total  int    `json:"total"`
	Turn   string `json:"turn"`
	SVG    string `json:"svg"`
}

// StreamManager handles active SSE connections.
// It is also a ports.SceneRenderer: every scene it is asked to draw is pushed to all
// subscribers, so connected pages redraw on every pass.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan<- string]struct{}
	palette     palette.Palette
}

// NewStreamManager creates a manager drawing frames with p (nil means the default palette).
func NewStreamManager(p palette.Palette) *StreamManager {
	if p == nil {
		p = palette.Default()
	}
	return &StreamManager{
		subscribers: make(map[chan<- string]struct{}),
		palette:     p,
	}
}

// Subscribe registers a new subscriber. The returned func unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe() (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	sm.subscribers[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			sm.mu.Lock()
			defer sm.mu.Unlock()
			delete(sm.subscribers, ch)
			close(ch)
		})
	}
}

// Subscribers returns the number of connected subscribers.
func (sm *StreamManager) Subscribers() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

// Broadcast sends msg to every subscriber, dropping it for subscribers that are not keeping up.
func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	slog.Debug("StreamManager: Broadcasting", "subscribers", len(sm.subscribers), "payload_size", len(msg))
	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			slog.Warn("SSE: Client buffer full, dropping frame")
		}
	}
}

// Draw implements ports.SceneRenderer.
func (sm *StreamManager) Draw(ctx context.Context, sc *scene.Scene) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(sm.frame(sc))
	if err != nil {
		return err
	}
	sm.Broadcast(string(payload))
	return nil
}

func (sm *StreamManager) frame(sc *scene.Scene) Frame {
	return Frame{
		Cursor: sc.Cursor,
		Total:  sc.Total,
		Turn:   sc.TurnTag,
		SVG:    string(svg.Encode(sc, sm.palette)),
	}
}
