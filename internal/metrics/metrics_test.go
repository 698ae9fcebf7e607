package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorCountsByMethodAndCode(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.ObserveSuccess("orchestrator", 0.5)
	c.ObserveSuccess("orchestrator", 0.7)
	c.ObserveSuccess("fallback", 1.2)
	c.ObserveError("EXECUTION_TIMEOUT", 30.0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.queriesTotal.WithLabelValues("orchestrator")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queriesTotal.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queryErrors.WithLabelValues("EXECUTION_TIMEOUT")))
}

func TestCollectorToolInvocationStatus(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.ObserveToolUse("get_weather", true)
	c.ObserveToolUse("get_weather", true)
	c.ObserveToolUse("get_weather", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.toolInvocations.WithLabelValues("get_weather", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.toolInvocations.WithLabelValues("get_weather", "error")))
}

func TestCollectorRecordToolUse(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	// the usage-recorder form feeds the same counters as ObserveToolUse
	c.RecordToolUse("open_app", "open vscode", true, 120*time.Millisecond)
	c.RecordToolUse("open_app", "open vscode again", false, 40*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.toolInvocations.WithLabelValues("open_app", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.toolInvocations.WithLabelValues("open_app", "error")))
}

func TestCollectorsOnSeparateRegistriesDoNotCollide(t *testing.T) {
	// Registering the same metric names twice on one registry panics, so each
	// collector owns its registry in tests.
	assert.NotPanics(t, func() {
		NewCollector(prometheus.NewRegistry())
		NewCollector(prometheus.NewRegistry())
	})
}
