package reasoning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.RetryBaseDelay)
	assert.Equal(t, 30*time.Second, cfg.FallbackTimeout)
	assert.Equal(t, 10, cfg.SufficiencyThreshold)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 1, cfg.MinQueryLength)
	assert.Equal(t, 1000, cfg.MaxQueryLength)
	assert.True(t, cfg.EnableFallback)
}

func TestConfigApplyKnownParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.apply(map[string]interface{}{
		"max_retries":           5,
		"retry_base_delay":      "250ms",
		"fallback_timeout":      10 * time.Second,
		"sufficiency_threshold": 25,
		"cache_ttl":             120, // plain number means seconds
		"min_query_length":      3,
		"max_query_length":      500,
		"enable_fallback":       false,
	}, zap.NewNop())

	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryBaseDelay)
	assert.Equal(t, 10*time.Second, cfg.FallbackTimeout)
	assert.Equal(t, 25, cfg.SufficiencyThreshold)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 3, cfg.MinQueryLength)
	assert.Equal(t, 500, cfg.MaxQueryLength)
	assert.False(t, cfg.EnableFallback)
}

func TestConfigApplyIgnoresUnknownParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.apply(map[string]interface{}{
		"no_such_parameter": 42,
		"max_retries":       7,
	}, zap.NewNop())

	// the unknown key is dropped, the known one still lands
	assert.Equal(t, 7, cfg.MaxRetries)
	assert.Equal(t, DefaultConfig().RetryBaseDelay, cfg.RetryBaseDelay)
}

func TestConfigApplyPartialUpdateKeepsRest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.apply(map[string]interface{}{"sufficiency_threshold": 1}, zap.NewNop())

	assert.Equal(t, 1, cfg.SufficiencyThreshold)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultConfig().CacheTTL, cfg.CacheTTL)
}
