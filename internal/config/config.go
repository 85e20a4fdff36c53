// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - External errors must be wrapped with this package's sentinels.
package config

import (
	"context"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log lines.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SessionCapacity bounds the number of live quiz sessions.
	SessionCapacity int `koanf:"session_capacity"`

	// SessionTTLSeconds is how long an idle quiz session lives.
	SessionTTLSeconds int `koanf:"session_ttl_seconds"`

	// HandoffCapacity bounds the number of unread quiz results.
	HandoffCapacity int `koanf:"handoff_capacity"`

	// HandoffTTLSeconds is how long an unread quiz result lives.
	HandoffTTLSeconds int `koanf:"handoff_ttl_seconds"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// MetricsNamespace prefixes every exported metric.
	MetricsNamespace string `koanf:"metrics_namespace"`

	// MetricsRefreshSeconds is the system gauge refresh period.
	MetricsRefreshSeconds int `koanf:"metrics_refresh_seconds"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:              "info",
		LogFormat:             "text",
		Addr:                  ":9080",
		SessionCapacity:       10_000,
		SessionTTLSeconds:     1800,
		HandoffCapacity:       10_000,
		HandoffTTLSeconds:     600,
		MaxBodyBytes:          64 << 10,
		MetricsNamespace:      "tradecalc",
		MetricsRefreshSeconds: 10,
	}
}

// SessionTTL returns SessionTTLSeconds as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

// HandoffTTL returns HandoffTTLSeconds as a duration.
func (c *Config) HandoffTTL() time.Duration {
	return time.Duration(c.HandoffTTLSeconds) * time.Second
}

// MetricsRefresh returns MetricsRefreshSeconds as a duration.
func (c *Config) MetricsRefresh() time.Duration {
	return time.Duration(c.MetricsRefreshSeconds) * time.Second
}

// Validate checks the values the service cannot run without.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return invalid("addr", "must not be empty")
	case c.SessionCapacity <= 0:
		return invalid("session_capacity", "must be positive")
	case c.HandoffCapacity <= 0:
		return invalid("handoff_capacity", "must be positive")
	case c.SessionTTLSeconds <= 0:
		return invalid("session_ttl_seconds", "must be positive")
	case c.HandoffTTLSeconds <= 0:
		return invalid("handoff_ttl_seconds", "must be positive")
	case c.MaxBodyBytes <= 0:
		return invalid("max_body_bytes", "must be positive")
	case !strings.EqualFold(c.LogFormat, "text") && !strings.EqualFold(c.LogFormat, "json"):
		return invalid("log_format", "must be text or json")
	case c.MetricsNamespace == "":
		return invalid("metrics_namespace", "must not be empty")
	case c.MetricsRefreshSeconds <= 0:
		return invalid("metrics_refresh_seconds", "must be positive")
	}
	return nil
}
