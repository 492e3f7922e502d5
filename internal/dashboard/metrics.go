// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	callbacks *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	inFlight  prometheus.Gauge
	duration  *prometheus.HistogramVec
}

// NewMetrics registers the server collectors plus the Go runtime and
// process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hnviz",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		callbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hnviz",
			Name:      "callbacks_total",
			Help:      "Callback dispatches by output region and result.",
		}, []string{"output", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hnviz",
			Name:      "callback_duration_seconds",
			Help:      "Time spent recomputing a figure.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"output"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hnviz",
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hnviz",
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving a matched route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.callbacks,
		m.latency,
		m.inFlight,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeCallback(output string, seconds float64, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.callbacks.WithLabelValues(output, result).Inc()
	m.latency.WithLabelValues(output).Observe(seconds)
}
