// Package api provides the preview HTTP server for radialchart.
//
// The chart is rendered once when the server is built. Every request is
// answered from those frozen bytes; nothing is re-rendered per request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/radialchart/internal/chart"
	"github.com/seenimoa/radialchart/internal/config"
	"github.com/seenimoa/radialchart/internal/report"
	"github.com/seenimoa/radialchart/web"
)

// Route paths of the pre-rendered assets.
const (
	PathPage   = "/"
	PathSVG    = "/chart.svg"
	PathScene  = "/scene.json"
	PathScript = "/static/tooltip.js"
)

// Options configures a Server.
type Options struct {
	Logger  *slog.Logger
	Version string
}

// Server is the preview HTTP server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	logger   *slog.Logger
	version  string
	scene    *chart.Scene
	assets   map[string]asset
	rendered time.Time
}

type asset struct {
	contentType string
	body        []byte
}

// NewServer renders the scene into every served format and configures
// routes and middleware.
func NewServer(ctx context.Context, cfg *config.Config, scene *chart.Scene, opts Options) (*Server, error) {
	if cfg == nil || scene == nil {
		return nil, errors.New("api: config and scene are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	page := cfg.PageOptions()
	page.ScriptURL = PathScript

	srv := &Server{
		cfg:      cfg,
		logger:   logger,
		version:  opts.Version,
		scene:    scene,
		assets:   make(map[string]asset),
		rendered: time.Now().UTC().Truncate(time.Second),
	}

	formats := []struct {
		path        string
		format      report.Format
		contentType string
	}{
		{PathPage, report.FormatHTML, "text/html; charset=utf-8"},
		{PathSVG, report.FormatSVG, "image/svg+xml"},
		{PathScene, report.FormatJSON, "application/json"},
	}
	for _, f := range formats {
		body, err := report.Bytes(ctx, f.format, scene, page)
		if err != nil {
			return nil, fmt.Errorf("pre-render %s: %w", f.format, err)
		}
		srv.assets[f.path] = asset{contentType: f.contentType, body: body}
	}

	srv.router = srv.buildRouter()
	return srv, nil
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server and shuts it down gracefully when
// ctx is cancelled or the process receives SIGINT or SIGTERM.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	timeout := time.Duration(s.cfg.Server.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.Server.CORSOrigins) > 0 {
		origins = s.cfg.Server.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/config", s.handleGetConfig)

	for path := range s.assets {
		r.Get(path, s.serveAsset(path))
	}

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS()))))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "the preview server is read-only")
	})

	return r
}

// serveAsset answers with the pre-rendered bytes for path. Conditional
// requests are honoured against the render time.
func (s *Server) serveAsset(path string) http.HandlerFunc {
	a := s.assets[path]
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", a.contentType)
		http.ServeContent(w, r, path, s.rendered, bytes.NewReader(a.body))
	}
}

// ════════════════════════════════════════════════════════════════════
// Request / Response types
// ════════════════════════════════════════════════════════════════════

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthData is the body of GET /health.
type HealthData struct {
	Status     string    `json:"status"`
	Version    string    `json:"version"`
	RenderedAt time.Time `json:"rendered_at"`
	Categories int       `json:"categories"`
	Segments   int       `json:"segments"`
	Arcs       int       `json:"arcs"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	version := s.version
	if version == "" {
		version = "dev"
	}
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: HealthData{
			Status:     "ok",
			Version:    version,
			RenderedAt: s.rendered,
			Categories: len(s.scene.Labels),
			Segments:   len(s.scene.Series),
			Arcs:       len(s.scene.Arcs()),
		},
	})
}

// ════════════════════════════════════════════════════════════════════
// Helpers
// ════════════════════════════════════════════════════════════════════

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
