package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/proofview"
	"github.com/aretw0/proofview/internal/metrics"
	"github.com/aretw0/proofview/internal/testutils"
	"github.com/aretw0/proofview/pkg/adapters/memory"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/ports"
	"github.com/aretw0/proofview/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler wires a viewer over the five-state cycle whose renderer is the stream manager.
func newTestHandler(t *testing.T, trace *domain.Trace, opts ...Option) (http.Handler, *StreamManager) {
	t.Helper()
	streams := NewStreamManager(nil)
	v, err := proofview.New("",
		proofview.WithLoader(memory.NewLoader(trace)),
		proofview.WithRenderer(streams),
	)
	require.NoError(t, err)
	return NewHandler(v, append([]Option{WithStreams(streams)}, opts...)...), streams
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeScene(t *testing.T, w *httptest.ResponseRecorder) scene.Scene {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sc scene.Scene
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sc))
	return sc
}

func TestNavigation(t *testing.T) {
	h, _ := newTestHandler(t, testutils.FiveStateCycle(t))

	sc := decodeScene(t, do(t, h, "GET", "/scene", ""))
	assert.Equal(t, 0, sc.Cursor)
	assert.Equal(t, 5, sc.Total)
	assert.Equal(t, "Other", sc.TurnTag)

	sc = decodeScene(t, do(t, h, "POST", "/previous", ""))
	assert.Equal(t, 0, sc.Cursor, "previous at the first state is a no-op")

	sc = decodeScene(t, do(t, h, "POST", "/next", ""))
	assert.Equal(t, 1, sc.Cursor)
	assert.Equal(t, "Prover", sc.TurnTag)

	sc = decodeScene(t, do(t, h, "POST", "/seek", `{"index": 42}`))
	assert.Equal(t, 4, sc.Cursor, "seek clamps")

	sc = decodeScene(t, do(t, h, "POST", "/next", ""))
	assert.Equal(t, 4, sc.Cursor, "next at the last state is a no-op")
}

func TestSeek_BadRequest(t *testing.T) {
	h, _ := newTestHandler(t, testutils.FiveStateCycle(t))
	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/seek", `{"idx": 1}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/seek", `nope`).Code)
}

func TestClick(t *testing.T) {
	h, _ := newTestHandler(t, testutils.FiveStateCycle(t))

	// 1. Inside the "next" region (bottom right of a 600x600 frame)
	sc := decodeScene(t, do(t, h, "POST", "/click", `{"x": 520, "y": 560}`))
	assert.Equal(t, 1, sc.Cursor)

	// 2. Inside the "previous" region
	sc = decodeScene(t, do(t, h, "POST", "/click", `{"x": 60, "y": 560}`))
	assert.Equal(t, 0, sc.Cursor)

	// 3. Outside every region
	w := do(t, h, "POST", "/click", `{"x": 300, "y": 300}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

// dispatchRecorder records the actions routed through Dispatch.
type dispatchRecorder struct {
	ports.Viewer
	actions []scene.Action
}

func (d *dispatchRecorder) Dispatch(ctx context.Context, action scene.Action) (*scene.Scene, error) {
	d.actions = append(d.actions, action)
	return d.Viewer.Dispatch(ctx, action)
}

func TestClick_RoutesThroughDispatch(t *testing.T) {
	v, err := proofview.New("", proofview.WithLoader(memory.NewLoader(testutils.FiveStateCycle(t))))
	require.NoError(t, err)
	rec := &dispatchRecorder{Viewer: v}
	h := NewHandler(rec)

	decodeScene(t, do(t, h, "POST", "/click", `{"x": 520, "y": 560}`))
	decodeScene(t, do(t, h, "POST", "/click", `{"x": 520, "y": 560}`))
	sc := decodeScene(t, do(t, h, "POST", "/click", `{"x": 60, "y": 560}`))

	assert.Equal(t, []scene.Action{scene.ActionNext, scene.ActionNext, scene.ActionPrevious}, rec.actions)
	assert.Equal(t, 1, sc.Cursor)
	assert.Equal(t, 1, v.Cursor())
}

func TestContractViolationIs422(t *testing.T) {
	g := testutils.CycleGraph(t, 3)
	// Covered flags are absent, so node style cannot be derived.
	state := domain.NewProofState(domain.TurnOther, map[domain.NodeID]domain.Color{0: "red", 1: "red", 2: "red"}, nil)
	trace, err := domain.NewTrace("broken", g, []*domain.ProofState{state})
	require.NoError(t, err)

	h, _ := newTestHandler(t, trace)
	w := do(t, h, "GET", "/scene", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "covered")
}

func TestDocuments(t *testing.T) {
	h, _ := newTestHandler(t, testutils.FiveStateCycle(t))

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/", "text/html; charset=utf-8", `<div id="stage"><svg`},
		{"/scene.svg", "image/svg+xml", "State 1 / 5"},
		{"/scene.mmd", "text/plain; charset=utf-8", "graph LR"},
		{"/scene.png", "image/png", "\x89PNG"},
		{"/health", "application/json", `"ok"`},
		{"/info", "application/json", "proofview-http"},
		{"/trace", "application/json", `"states":5`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, h, "GET", tt.path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestCORS(t *testing.T) {
	h, _ := newTestHandler(t, testutils.FiveStateCycle(t))
	w := do(t, h, "OPTIONS", "/next", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsRoute(t *testing.T) {
	m := metrics.New()
	h, _ := newTestHandler(t, testutils.FiveStateCycle(t), WithMetrics(m.Handler()))
	w := do(t, h, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)

	h, _ = newTestHandler(t, testutils.FiveStateCycle(t))
	assert.Equal(t, http.StatusNotFound, do(t, h, "GET", "/metrics", "").Code)
}

func TestSubscribeEvents_PushesEveryRedraw(t *testing.T) {
	h, streams := newTestHandler(t, testutils.FiveStateCycle(t))
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Subscribe
	req, err := http.NewRequestWithContext(ctx, "GET", srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: ping\n", line)
	require.Eventually(t, func() bool { return streams.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	// 2. Navigate twice; the second call is a boundary no-op that still redraws
	for _, post := range []struct{ path, body string }{
		{"/seek", `{"index": 4}`},
		{"/next", ""},
	} {
		r, err := http.Post(srv.URL+post.path, "application/json", bytes.NewBufferString(post.body))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, r.StatusCode)
		r.Body.Close()
	}

	// 3. Expect two frames, both at the last state
	var frames []Frame
	for len(frames) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if !strings.HasPrefix(line, "data: {") {
			continue
		}
		var f Frame
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &f))
		frames = append(frames, f)
	}
	for _, f := range frames {
		assert.Equal(t, 4, f.Cursor)
		assert.Equal(t, 5, f.Total)
		assert.Contains(t, f.SVG, "State 5 / 5")
	}
}

func TestStreamManager_DropsForSlowSubscribers(t *testing.T) {
	sm := NewStreamManager(nil)
	ch, unsubscribe := sm.Subscribe()

	for i := 0; i < 20; i++ {
		sm.Broadcast("frame")
	}
	assert.Len(t, ch, cap(ch))

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, sm.Subscribers())
}
