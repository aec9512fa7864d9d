// Package server provides the read-only HTTP query surface and the embedded
// static frontend. Handlers are stateless: every request re-reads and
// re-aggregates the relevant files, so requests share no mutable state.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"
)

//go:embed web
var webFS embed.FS

// Config controls the server runtime behavior.
type Config struct {
	DataDir         string
	Addr            string
	RetentionMonths int
}

// Server serves the dashboard API.
type Server struct {
	cfg Config
}

// New returns a server with the provided config.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8420"
	}
	if cfg.RetentionMonths <= 0 {
		cfg.RetentionMonths = 6
	}
	return &Server{cfg: cfg}
}

// Handler builds the route table. Exposed separately so tests can drive
// handlers through httptest without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/projects", s.handleProjects)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/sessions/{project}/{session}", s.handleSession)
	mux.HandleFunc("GET /api/timeline", s.handleTimeline)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	static, err := fs.Sub(webFS, "web")
	if err == nil {
		mux.Handle("GET /", http.FileServerFS(static))
	}
	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("dashboard http server: %w", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ccdash: encoding response: %v", err)
	}
}

// errorPayload is the structured error body every failing handler returns.
type errorPayload struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(errorPayload{Error: msg})
}
