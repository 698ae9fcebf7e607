package reasoning

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/jarvis-assistant/models"
)

func TestMetricsTracksOutcomes(t *testing.T) {
	m := NewMetrics()

	m.UpdateSuccess(1.0, models.MethodOrchestrator)
	m.UpdateSuccess(2.0, models.MethodFallback)
	m.UpdateError("ORCHESTRATOR_FAILED: boom", 3.0)

	snapshot := m.Snapshot()
	assert.Equal(t, int64(3), snapshot.TotalQueries)
	assert.Equal(t, int64(2), snapshot.SuccessfulQueries)
	assert.Equal(t, int64(1), snapshot.OrchestratorQueries)
	assert.Equal(t, int64(1), snapshot.FallbackQueries)
	assert.Equal(t, int64(1), snapshot.ErrorCount)
	assert.Equal(t, "ORCHESTRATOR_FAILED: boom", snapshot.LastError)
	// average covers errors too: (1+2+3)/3
	assert.InDelta(t, 2.0, snapshot.AverageResponseTime, 1e-9)
	assert.InDelta(t, 66.666, snapshot.SuccessRate, 0.01)
}

func TestMetricsEmptySnapshot(t *testing.T) {
	snapshot := NewMetrics().Snapshot()
	assert.Zero(t, snapshot.TotalQueries)
	assert.Zero(t, snapshot.AverageResponseTime)
	assert.Zero(t, snapshot.SuccessRate)
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()
	m.UpdateSuccess(1.0, models.MethodOrchestrator)
	m.UpdateError("bad", 1.0)

	m.Reset()

	snapshot := m.Snapshot()
	assert.Equal(t, models.MetricsSnapshot{}, snapshot)

	// still usable after reset
	m.UpdateSuccess(0.5, models.MethodFallback)
	assert.Equal(t, int64(1), m.Snapshot().TotalQueries)
}

func TestMetricsConcurrentUpdates(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.UpdateSuccess(0.1, models.MethodOrchestrator)
		}()
		go func() {
			defer wg.Done()
			m.UpdateError("err", 0.1)
		}()
	}
	wg.Wait()

	snapshot := m.Snapshot()
	assert.Equal(t, int64(100), snapshot.TotalQueries)
	assert.Equal(t, int64(50), snapshot.SuccessfulQueries)
	assert.Equal(t, int64(50), snapshot.ErrorCount)
}
