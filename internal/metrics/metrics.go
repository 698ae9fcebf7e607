// Package metrics exposes dispatch outcomes as Prometheus metrics. The
// dispatcher keeps its own fast counters for the metrics snapshot; this
// collector mirrors them for scraping.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelMethod = "method"
	labelCode   = "code"
)

// Collector registers and updates the assistant's Prometheus metrics
type Collector struct {
	queriesTotal    *prometheus.CounterVec
	queryErrors     *prometheus.CounterVec
	queryLatency    prometheus.Histogram
	toolInvocations *prometheus.CounterVec
}

// NewCollector creates a collector registered on the given registerer.
// Pass prometheus.DefaultRegisterer for the process-wide registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		queriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jarvis_queries_total",
			Help: "Total dispatched queries by execution method",
		}, []string{labelMethod}),
		queryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jarvis_query_errors_total",
			Help: "Failed queries by error code",
		}, []string{labelCode}),
		queryLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "jarvis_query_duration_seconds",
			Help:    "Dispatch latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		toolInvocations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jarvis_tool_invocations_total",
			Help: "Tool invocations by tool name and status",
		}, []string{"tool", "status"}),
	}
}

// ObserveSuccess records a successful dispatch
func (c *Collector) ObserveSuccess(method string, seconds float64) {
	c.queriesTotal.WithLabelValues(method).Inc()
	c.queryLatency.Observe(seconds)
}

// ObserveError records a failed dispatch
func (c *Collector) ObserveError(code string, seconds float64) {
	c.queryErrors.WithLabelValues(code).Inc()
	c.queryLatency.Observe(seconds)
}

// ObserveToolUse records one tool invocation
func (c *Collector) ObserveToolUse(tool string, success bool) {
	status := "ok"
	if !success {
		status = "error"
	}
	c.toolInvocations.WithLabelValues(tool, status).Inc()
}

// RecordToolUse adapts ObserveToolUse to the orchestrator's usage recorder
// contract so the collector can sit on the execution path.
func (c *Collector) RecordToolUse(tool, _ string, success bool, _ time.Duration) {
	c.ObserveToolUse(tool, success)
}
