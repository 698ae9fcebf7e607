package reasoning

import (
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Config holds the dispatcher's runtime-tunable parameters
type Config struct {
	MaxRetries           int           `json:"max_retries"`
	RetryBaseDelay       time.Duration `json:"retry_base_delay"`
	FallbackTimeout      time.Duration `json:"fallback_timeout"`
	SufficiencyThreshold int           `json:"sufficiency_threshold"` // minimum response length that skips fallback
	CacheTTL             time.Duration `json:"cache_ttl"`
	MinQueryLength       int           `json:"min_query_length"`
	MaxQueryLength       int           `json:"max_query_length"`
	EnableFallback       bool          `json:"enable_fallback"`
}

// DefaultConfig returns the dispatcher defaults
func DefaultConfig() Config {
	return Config{
		MaxRetries:           3,
		RetryBaseDelay:       time.Second,
		FallbackTimeout:      30 * time.Second,
		SufficiencyThreshold: 10,
		CacheTTL:             5 * time.Minute,
		MinQueryLength:       1,
		MaxQueryLength:       1000,
		EnableFallback:       true,
	}
}

// apply merges known parameters from the update map into the config.
// Unknown parameter names are logged and ignored, never an error.
func (c *Config) apply(updates map[string]interface{}, logger *zap.Logger) {
	for key, value := range updates {
		switch key {
		case "max_retries":
			c.MaxRetries = cast.ToInt(value)
		case "retry_base_delay":
			c.RetryBaseDelay = toDuration(value)
		case "fallback_timeout":
			c.FallbackTimeout = toDuration(value)
		case "sufficiency_threshold":
			c.SufficiencyThreshold = cast.ToInt(value)
		case "cache_ttl":
			c.CacheTTL = toDuration(value)
		case "min_query_length":
			c.MinQueryLength = cast.ToInt(value)
		case "max_query_length":
			c.MaxQueryLength = cast.ToInt(value)
		case "enable_fallback":
			c.EnableFallback = cast.ToBool(value)
		default:
			logger.Warn("Unknown configuration parameter ignored", zap.String("parameter", key))
			continue
		}
		logger.Info("Configuration updated", zap.String("parameter", key), zap.Any("value", value))
	}
}

// toDuration accepts a time.Duration, a duration string ("30s") or a number of
// seconds, matching how the values arrive from config files and update maps.
func toDuration(value interface{}) time.Duration {
	switch v := value.(type) {
	case time.Duration:
		return v
	case string:
		return cast.ToDuration(v)
	default:
		return time.Duration(cast.ToFloat64(v) * float64(time.Second))
	}
}
