// ABOUTME: HTTP server for the browser dashboard.
// ABOUTME: Wires routes, request logging, and bounded graceful shutdown.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/harperreed/genzhealth/internal/dashboard"
)

const (
	defaultShutdownTimeout = 5 * time.Second
	readHeaderTimeout      = 10 * time.Second
)

// Config holds the web server settings.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

// Server serves the dashboard over HTTP. It holds no per-user state; every
// request recomputes its view from the dashboard service.
type Server struct {
	httpAddr        string
	shutdownTimeout time.Duration
	httpServer      *http.Server
	svc             *dashboard.Service
	page            *template.Template
}

// NewServer builds a Server for the given dashboard service.
func NewServer(cfg Config, svc *dashboard.Service) (*Server, error) {
	if svc == nil {
		return nil, errors.New("dashboard service is required")
	}
	page, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		httpAddr:        cfg.HTTPAddr,
		shutdownTimeout: cfg.ShutdownTimeout,
		svc:             svc,
		page:            page,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}
	s.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s, nil
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /charts/{name}", s.handleChart)
	mux.HandleFunc("GET /export.csv", s.handleExport)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return logRequests(mux)
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("dashboard listening on http://%s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
