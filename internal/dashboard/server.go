// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/ingham-physics/hnviz/internal/callback"
)

const (
	updatePath       = "/_dash-update"
	layoutPath       = "/_dash-layout"
	dependenciesPath = "/_dash-dependencies"
	healthPath       = "/healthz"
	metricsPath      = "/metrics"

	maxUpdateBody          = 1 << 20
	defaultShutdownTimeout = 10 * time.Second
)

// Options configure the server.
type Options struct {
	Addr string

	// Debug includes error details in callback error responses.
	Debug bool

	// Metrics exposes Prometheus metrics at /metrics.
	Metrics bool

	ShutdownTimeout time.Duration
}

// Server serves the page and dispatches control changes to the callback
// registry. The table behind both is read-only, so requests are handled
// concurrently without locking.
type Server struct {
	page     *Page
	bindings *callback.Registry
	opts     Options
	metrics  *Metrics
	handler  http.Handler
}

// NewServer wires the routes for page and bindings.
func NewServer(page *Page, bindings *callback.Registry, opts Options) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}
	s := &Server{page: page, bindings: bindings, opts: opts}
	if opts.Metrics {
		s.metrics = NewMetrics()
	}

	router := mux.NewRouter()
	router.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	router.HandleFunc(updatePath, s.handleUpdate).Methods(http.MethodPost)
	router.HandleFunc(layoutPath, s.handleLayout).Methods(http.MethodGet)
	router.HandleFunc(dependenciesPath, s.handleDependencies).Methods(http.MethodGet)
	router.HandleFunc(healthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	if s.metrics != nil {
		router.Handle(metricsPath, s.metrics.Handler()).Methods(http.MethodGet)
		router.Use(s.metrics.middleware)
	}
	s.handler = withRequestID(accessLog(router, s.metrics))
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// updateRequest is the body of a callback request.
type updateRequest struct {
	Output string          `json:"output"`
	Inputs callback.Inputs `json:"inputs"`
}

// errorResponse is the body of a failed callback request.
type errorResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id"`
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := s.page.WriteTo(w); err != nil {
		slog.Warn("write page", "error", err)
	}
}

func (s *Server) handleLayout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.page.Figures)
}

// triggeredResponse lists the outputs recomputed when one control changes.
type triggeredResponse struct {
	Input   string   `json:"input"`
	Outputs []string `json:"outputs"`
}

// handleDependencies serves the full graph, or with ?input=<id> only the
// outputs that control triggers.
func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	if input == "" {
		writeJSON(w, http.StatusOK, s.bindings.Graph())
		return
	}
	outputs := s.bindings.Triggered(input)
	if outputs == nil {
		outputs = []string{}
	}
	writeJSON(w, http.StatusOK, triggeredResponse{Input: input, Outputs: outputs})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateBody))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "malformed callback request", err)
		return
	}

	start := time.Now()
	fig, err := s.bindings.Dispatch(req.Output, req.Inputs)
	if s.metrics != nil && !errors.Is(err, callback.ErrUnknownOutput) {
		s.metrics.observeCallback(req.Output, time.Since(start).Seconds(), err)
	}

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, fig)
	case errors.Is(err, callback.ErrUnknownOutput):
		s.writeError(w, r, http.StatusNotFound, "unknown output", err)
	case errors.Is(err, callback.ErrInvalidInput):
		s.writeError(w, r, http.StatusBadRequest, "invalid input", err)
	default:
		s.writeError(w, r, http.StatusInternalServerError, "callback failed", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, code int, msg string, err error) {
	id := RequestID(r.Context())
	slog.Warn("callback request failed", "request_id", id, "status", code, "error", err)
	resp := errorResponse{Error: msg, RequestID: id}
	if s.opts.Debug {
		resp.Detail = err.Error()
	}
	writeJSON(w, code, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", "error", err)
	}
}

// Serve listens on the configured address and serves until ctx is
// cancelled or a termination signal arrives, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("dashboard listening", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-sigChan:
		slog.Warn("received signal, shutting down", "signal", sig)
		cancel()
	case <-ctx.Done():
		slog.Info("context cancelled, shutting down")
	case err := <-serverErr:
		slog.Error("http server error", "error", err)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
		return err
	}
	slog.Info("dashboard stopped")
	return nil
}
