// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID returns the ID assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withRequestID assigns a request ID, reusing a well-formed incoming one.
var withRequestID mux.MiddlewareFunc = func(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// accessLog logs each finished request and counts it by route and status.
// It runs inside withRequestID so the request carries its ID.
func accessLog(next http.Handler, m *Metrics) http.Handler {
	return handlers.CustomLoggingHandler(io.Discard, next, func(_ io.Writer, p handlers.LogFormatterParams) {
		slog.Debug("request",
			"request_id", RequestID(p.Request.Context()),
			"method", p.Request.Method,
			"path", p.URL.Path,
			"status", p.StatusCode,
			"size", p.Size,
			"duration", time.Since(p.TimeStamp),
			"remote_addr", p.Request.RemoteAddr,
		)
		if m != nil {
			m.requests.WithLabelValues(route(p.URL.Path), strconv.Itoa(p.StatusCode)).Inc()
		}
	})
}

// middleware tracks in-flight requests and per-route latency for matched
// routes.
func (m *Metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := "other"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				name = tpl
			}
		}
		m.inFlight.Inc()
		defer m.inFlight.Dec()
		start := time.Now()
		next.ServeHTTP(w, r)
		m.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	})
}

// route collapses unknown paths so arbitrary URLs cannot grow the label set.
func route(path string) string {
	switch path {
	case "/", updatePath, layoutPath, dependenciesPath, healthPath, metricsPath:
		return path
	default:
		return "other"
	}
}
