// Package http serves a viewer over HTTP: scene documents, a browser page whose click regions
// drive navigation, and an SSE stream that pushes every redraw.
package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/proofview"
	"github.com/aretw0/proofview/internal/logging"
	"github.com/aretw0/proofview/internal/presentation/graph"
	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/internal/presentation/png"
	"github.com/aretw0/proofview/internal/presentation/svg"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/layout"
	"github.com/aretw0/proofview/pkg/ports"
	"github.com/aretw0/proofview/pkg/scene"
	"github.com/go-chi/chi/v5"
)

// Server exposes a ports.Viewer over HTTP.
type Server struct {
	Viewer  ports.Viewer
	Streams *StreamManager
	Palette palette.Palette
	Metrics http.Handler

	mu   sync.Mutex
	last *scene.Scene
}

// Option configures the Server.
type Option func(*Server)

// WithStreams shares a StreamManager that the viewer also uses as its renderer.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithPalette sets the palette used for SVG, PNG and Mermaid output.
func WithPalette(p palette.Palette) Option {
	return func(s *Server) {
		s.Palette = p
	}
}

// WithMetrics mounts a metrics handler at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// NewHandler creates a new HTTP handler for the viewer.
func NewHandler(viewer ports.Viewer, opts ...Option) http.Handler {
	server := &Server{
		Viewer:  viewer,
		Palette: palette.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}
	if server.Streams == nil {
		server.Streams = NewStreamManager(server.Palette)
	}

	r := chi.NewRouter()
	r.Get("/", server.GetPage)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/trace", server.GetTrace)
	r.Get("/scene", server.GetScene)
	r.Get("/scene.svg", server.GetSceneSVG)
	r.Get("/scene.png", server.GetScenePNG)
	r.Get("/scene.mmd", server.GetSceneMermaid)
	r.Post("/next", server.Next)
	r.Post("/previous", server.Previous)
	r.Post("/seek", server.Seek)
	r.Post("/click", server.Click)
	r.Get("/events", server.SubscribeEvents)
	if server.Metrics != nil {
		r.Handle("/metrics", server.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// remember caches the scene of the latest pass for hit-testing clicks.
func (s *Server) remember(sc *scene.Scene) {
	s.mu.Lock()
	s.last = sc
	s.mu.Unlock()
}

// render runs a pass and writes an error response when it fails.
func (s *Server) render(w http.ResponseWriter, r *http.Request, op string) (*scene.Scene, bool) {
	sc, err := s.Viewer.Render(r.Context())
	if err != nil {
		writeError(w, op, err)
		return nil, false
	}
	s.remember(sc)
	return sc, true
}

// writeError maps viewer errors to status codes: malformed traces are 422, the rest 500.
func writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	if domain.IsContractViolation(err) {
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
	slog.Error(op+" failed", "error", err, "status", status)
}

func writeJSON(w http.ResponseWriter, op string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(op+" response encode failed", "error", err)
	}
}

// GetPage handles GET /: an HTML page with the current scene inlined.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.render(w, r, "Page")
	if !ok {
		return
	}
	title := s.Viewer.Trace().Name
	if title == "" {
		title = "trace"
	}
	data := pageData{
		Title:   title,
		Version: strings.TrimSpace(proofview.Version),
		SVG:     template.HTML(svg.Encode(sc, s.Palette)),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		slog.Error("Page template failed", "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// GetScene handles GET /scene.
func (s *Server) GetScene(w http.ResponseWriter, r *http.Request) {
	if sc, ok := s.render(w, r, "Render"); ok {
		writeJSON(w, "Render", sc)
	}
}

// GetSceneSVG handles GET /scene.svg.
func (s *Server) GetSceneSVG(w http.ResponseWriter, r *http.Request) {
	if sc, ok := s.render(w, r, "Render"); ok {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg.Encode(sc, s.Palette))
	}
}

// GetScenePNG handles GET /scene.png.
func (s *Server) GetScenePNG(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.render(w, r, "Render")
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := png.NewRenderer(&buf, png.WithPalette(s.Palette)).Draw(r.Context(), sc); err != nil {
		writeError(w, "PNG", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// GetSceneMermaid handles GET /scene.mmd.
func (s *Server) GetSceneMermaid(w http.ResponseWriter, r *http.Request) {
	if sc, ok := s.render(w, r, "Render"); ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(graph.GenerateMermaid(sc, s.Palette)))
	}
}

// Next handles POST /next.
func (s *Server) Next(w http.ResponseWriter, r *http.Request) {
	sc, err := s.Viewer.Next(r.Context())
	s.respond(w, "Next", sc, err)
}

// Previous handles POST /previous.
func (s *Server) Previous(w http.ResponseWriter, r *http.Request) {
	sc, err := s.Viewer.Previous(r.Context())
	s.respond(w, "Previous", sc, err)
}

// SeekRequest is the body of POST /seek.
type SeekRequest struct {
	Index *int `json:"index"`
}

// Seek handles POST /seek.
func (s *Server) Seek(w http.ResponseWriter, r *http.Request) {
	var body SeekRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Index == nil {
		http.Error(w, "Invalid request body: expected {\"index\": n}", http.StatusBadRequest)
		slog.Warn("Seek: Invalid request body", "error", err)
		return
	}
	sc, err := s.Viewer.Seek(r.Context(), *body.Index)
	s.respond(w, "Seek", sc, err)
}

// ClickRequest is the body of POST /click, in scene coordinates.
type ClickRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Click handles POST /click: the click is hit-tested against the regions of the latest
// scene. Clicks outside every region do nothing and answer 204.
func (s *Server) Click(w http.ResponseWriter, r *http.Request) {
	var body ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Click: Invalid request body", "error", err)
		return
	}

	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		var ok bool
		if last, ok = s.render(w, r, "Click"); !ok {
			return
		}
	}

	action, hit := last.Hit(layout.Point{X: body.X, Y: body.Y})
	if !hit {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	sc, err := s.Viewer.Dispatch(r.Context(), action)
	s.respond(w, "Click", sc, err)
}

func (s *Server) respond(w http.ResponseWriter, op string, sc *scene.Scene, err error) {
	if err != nil {
		writeError(w, op, err)
		return
	}
	s.remember(sc)
	slog.Debug(op, "cursor", sc.Cursor, "total", sc.Total)
	writeJSON(w, op, sc)
}

// TraceInfo summarizes the loaded trace.
type TraceInfo struct {
	Name   string        `json:"name"`
	Nodes  int           `json:"nodes"`
	Edges  []domain.Edge `json:"edges"`
	States int           `json:"states"`
	Cursor int           `json:"cursor"`
}

// GetTrace handles GET /trace.
func (s *Server) GetTrace(w http.ResponseWriter, r *http.Request) {
	trace := s.Viewer.Trace()
	if trace == nil {
		writeError(w, "Trace", domain.ErrEmptyTrace)
		return
	}
	writeJSON(w, "Trace", TraceInfo{
		Name:   trace.Name,
		Nodes:  trace.Graph.Size(),
		Edges:  trace.Graph.Edges(),
		States: trace.Len(),
		Cursor: s.Viewer.Cursor(),
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, "Health", map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, "Info", map[string]string{
		"app":     "proofview-http",
		"version": strings.TrimSpace(proofview.Version),
	})
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		slog.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe()
	defer cancel()
	slog.Info("SSE: Subscribed to redraws")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			slog.Info("SSE Client Disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func init() {
	// Configure default slog to output JSON to stderr
	slog.SetDefault(logging.NewJSON(os.Stderr, slog.LevelInfo))
}
