// Package config loads settings from defaults, environment variables and an
// optional config.yaml, and hot reloads the dispatcher tunables through
// fsnotify. API keys only ever come from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
	AI         AIConfig         `mapstructure:"ai"`
	Semantic   SemanticConfig   `mapstructure:"semantic"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// AppConfig holds application settings
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// DispatcherConfig holds the reasoning dispatcher's runtime tunables
type DispatcherConfig struct {
	MaxRetries           int           `mapstructure:"max_retries"`
	RetryBaseDelay       time.Duration `mapstructure:"retry_base_delay"`
	FallbackTimeout      time.Duration `mapstructure:"fallback_timeout"`
	SufficiencyThreshold int           `mapstructure:"sufficiency_threshold"`
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
	MinQueryLength       int           `mapstructure:"min_query_length"`
	MaxQueryLength       int           `mapstructure:"max_query_length"`
	EnableFallback       bool          `mapstructure:"enable_fallback"`
}

// AIConfig holds fallback agent settings
type AIConfig struct {
	APIKey            string  `mapstructure:"api_key"`
	Model             string  `mapstructure:"model"`
	MaxTokens         int     `mapstructure:"max_tokens"`
	Temperature       float64 `mapstructure:"temperature"`
	RequestsPerMinute int     `mapstructure:"requests_per_minute"`
}

// SemanticConfig holds embedding classifier settings; disabled by default
type SemanticConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Collection string `mapstructure:"collection"`
	Model      string `mapstructure:"model"`
	Dimension  int    `mapstructure:"dimension"`
}

// DatabaseConfig holds usage history storage settings
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from defaults, environment and an optional file
func Load() (*Config, error) {
	viper.SetDefault("app.name", "Jarvis Assistant")
	viper.SetDefault("app.version", "1.0.0")

	viper.SetDefault("dispatcher.max_retries", 3)
	viper.SetDefault("dispatcher.retry_base_delay", "1s")
	viper.SetDefault("dispatcher.fallback_timeout", "30s")
	viper.SetDefault("dispatcher.sufficiency_threshold", 10)
	viper.SetDefault("dispatcher.cache_ttl", "5m")
	viper.SetDefault("dispatcher.min_query_length", 1)
	viper.SetDefault("dispatcher.max_query_length", 1000)
	viper.SetDefault("dispatcher.enable_fallback", true)

	viper.SetDefault("ai.model", "gpt-4o-mini")
	viper.SetDefault("ai.max_tokens", 2048)
	viper.SetDefault("ai.temperature", 0.1)
	viper.SetDefault("ai.requests_per_minute", 60)

	viper.SetDefault("semantic.enabled", false)
	viper.SetDefault("semantic.host", "localhost")
	viper.SetDefault("semantic.port", 6334)
	viper.SetDefault("semantic.collection", "intent_exemplars")
	viper.SetDefault("semantic.model", "text-embedding-3-small")
	viper.SetDefault("semantic.dimension", 1536)

	viper.SetDefault("database.path", "storage/jarvis.db")
	viper.SetDefault("logging.level", "info")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		viper.Set("ai.api_key", apiKey)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine, defaults apply
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// DispatcherUpdates converts the dispatcher section to the partial-update map
// the dispatcher consumes.
func (c *Config) DispatcherUpdates() map[string]interface{} {
	return map[string]interface{}{
		"max_retries":           c.Dispatcher.MaxRetries,
		"retry_base_delay":      c.Dispatcher.RetryBaseDelay,
		"fallback_timeout":      c.Dispatcher.FallbackTimeout,
		"sufficiency_threshold": c.Dispatcher.SufficiencyThreshold,
		"cache_ttl":             c.Dispatcher.CacheTTL,
		"min_query_length":      c.Dispatcher.MinQueryLength,
		"max_query_length":      c.Dispatcher.MaxQueryLength,
		"enable_fallback":       c.Dispatcher.EnableFallback,
	}
}

// Watch reloads the config file on change and calls onChange with the fresh
// dispatcher tunables. Reload errors keep the previous configuration.
func Watch(onChange func(updates map[string]interface{})) {
	viper.OnConfigChange(func(_ fsnotify.Event) {
		var fresh Config
		if err := viper.Unmarshal(&fresh); err != nil {
			return
		}
		onChange(fresh.DispatcherUpdates())
	})
	viper.WatchConfig()
}
