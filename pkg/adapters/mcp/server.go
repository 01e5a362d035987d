// Package mcp exposes a viewer to MCP clients: navigation and rendering as tools, the loaded
// trace as a resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/proofview"
	"github.com/aretw0/proofview/internal/presentation/graph"
	"github.com/aretw0/proofview/internal/presentation/palette"
	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/ports"
	"github.com/aretw0/proofview/pkg/scene"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TraceURI is the resource URI of the loaded trace.
const TraceURI = "proofview://trace"

// SceneResponse is the structured result of every navigation tool.
type SceneResponse struct {
	Cursor  int          `json:"cursor" jsonschema_description:"Index of the displayed state (0-based)"`
	Total   int          `json:"total" jsonschema_description:"Number of states in the trace"`
	Status  []string     `json:"status" jsonschema_description:"Status lines shown above the graph"`
	Scene   *scene.Scene `json:"scene" jsonschema_description:"Fully resolved frame: nodes, edges, texts and click regions"`
	Mermaid string       `json:"mermaid" jsonschema_description:"The same frame as a Mermaid flowchart"`
}

// TraceResource is the content of the trace resource.
type TraceResource struct {
	Name   string        `json:"name"`
	Nodes  int           `json:"nodes"`
	Edges  []domain.Edge `json:"edges"`
	States int           `json:"states"`
	Cursor int           `json:"cursor"`
}

// Server wraps a Viewer and exposes it as an MCP Server.
type Server struct {
	viewer    ports.Viewer
	palette   palette.Palette
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(viewer ports.Viewer, p palette.Palette) *Server {
	if p == nil {
		p = palette.Default()
	}
	s := &Server{
		viewer:    viewer,
		palette:   p,
		mcpServer: server.NewMCPServer("proofview-mcp", strings.TrimSpace(proofview.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
		return nil
	})

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: render_scene
	s.mcpServer.AddTool(mcp.NewTool("render_scene",
		mcp.WithDescription("Redraw the proof state at the current cursor and return the resolved scene."),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handleRender))

	// TOOL: next_state
	s.mcpServer.AddTool(mcp.NewTool("next_state",
		mcp.WithDescription("Advance to the next proof state and redraw. At the last state the cursor stays put."),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handleNext))

	// TOOL: previous_state
	s.mcpServer.AddTool(mcp.NewTool("previous_state",
		mcp.WithDescription("Go back to the previous proof state and redraw. At the first state the cursor stays put."),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handlePrevious))

	// TOOL: seek_state
	s.mcpServer.AddTool(mcp.NewTool("seek_state",
		mcp.WithDescription("Jump to a proof state by index (0-based, clamped to the trace) and redraw."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("Target state index")),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handleSeek))
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	sc, err := s.viewer.Render(ctx)
	return s.respond("render", sc, err)
}

func (s *Server) handleNext(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	sc, err := s.viewer.Next(ctx)
	return s.respond("next", sc, err)
}

func (s *Server) handlePrevious(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	sc, err := s.viewer.Previous(ctx)
	return s.respond("previous", sc, err)
}

func (s *Server) handleSeek(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	index, err := intArg(args, "index")
	if err != nil {
		slog.Warn("MCP Seek: Invalid index", "error", err)
		return SceneResponse{}, err
	}
	sc, err := s.viewer.Seek(ctx, index)
	return s.respond("seek", sc, err)
}

func (s *Server) respond(op string, sc *scene.Scene, err error) (SceneResponse, error) {
	if err != nil {
		slog.Error("MCP "+op+" failed", "error", err)
		return SceneResponse{}, fmt.Errorf("%s failed: %w", op, err)
	}
	return SceneResponse{
		Cursor: sc.Cursor,
		Total:  sc.Total,
		Status: []string{
			scene.TurnDescription(sc.Turn),
			scene.StateDescription(sc.Cursor, sc.Total),
		},
		Scene:   sc,
		Mermaid: graph.GenerateMermaid(sc, s.palette),
	}, nil
}

// intArg reads a whole number argument. JSON numbers arrive as float64.
func intArg(args map[string]interface{}, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s must be a whole number, got %v", key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return int(n), nil
	case nil:
		return 0, fmt.Errorf("missing required argument %q", key)
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, v)
	}
}

func (s *Server) registerResources() {
	// EXPOSE: proofview://trace
	s.mcpServer.AddResource(mcp.NewResource(TraceURI, "Loaded Proof Trace",
		mcp.WithMIMEType("application/json"),
	), s.readTrace)
}

func (s *Server) readTrace(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	trace := s.viewer.Trace()
	if trace == nil {
		return nil, domain.ErrEmptyTrace
	}
	jsonBytes, err := json.Marshal(TraceResource{
		Name:   trace.Name,
		Nodes:  trace.Graph.Size(),
		Edges:  trace.Graph.Edges(),
		States: trace.Len(),
		Cursor: s.viewer.Cursor(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode trace: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TraceURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
