package reasoning

import (
	"sync"

	"github.com/yourusername/jarvis-assistant/models"
)

// Metrics tracks dispatch outcomes across the process lifetime
type Metrics struct {
	mu                  sync.Mutex
	totalQueries        int64
	successfulQueries   int64
	orchestratorQueries int64
	fallbackQueries     int64
	errorCount          int64
	lastError           string
	totalResponseTime   float64 // seconds, over all completed queries
}

// NewMetrics creates zeroed metrics
func NewMetrics() *Metrics {
	return &Metrics{}
}

// UpdateSuccess records a successful dispatch and its method
func (m *Metrics) UpdateSuccess(responseTime float64, method string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalQueries++
	m.successfulQueries++
	m.totalResponseTime += responseTime

	switch method {
	case models.MethodOrchestrator:
		m.orchestratorQueries++
	case models.MethodFallback:
		m.fallbackQueries++
	}
}

// UpdateError records a failed dispatch
func (m *Metrics) UpdateError(errMsg string, responseTime float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalQueries++
	m.errorCount++
	m.lastError = errMsg
	m.totalResponseTime += responseTime
}

// Snapshot returns a read-only copy of the current counters
func (m *Metrics) Snapshot() models.MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := models.MetricsSnapshot{
		TotalQueries:        m.totalQueries,
		SuccessfulQueries:   m.successfulQueries,
		OrchestratorQueries: m.orchestratorQueries,
		FallbackQueries:     m.fallbackQueries,
		ErrorCount:          m.errorCount,
		LastError:           m.lastError,
	}
	if m.totalQueries > 0 {
		snapshot.AverageResponseTime = m.totalResponseTime / float64(m.totalQueries)
		snapshot.SuccessRate = float64(m.successfulQueries) / float64(m.totalQueries) * 100
	}
	return snapshot
}

// Reset zeroes all counters
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalQueries = 0
	m.successfulQueries = 0
	m.orchestratorQueries = 0
	m.fallbackQueries = 0
	m.errorCount = 0
	m.lastError = ""
	m.totalResponseTime = 0
}
