// Package am holds the core Manifold configuration model.
package am

import "time"

// Config represents the core Manifold configuration
type Config struct {
	Host     HostConfig     `mapstructure:"host"`
	ErrorLog ErrorLogConfig `mapstructure:"error_log"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// HostConfig configures the shared runtime host
type HostConfig struct {
	// Bounded error queue retention
	ErrorQueueMaxSize       int `mapstructure:"error_queue_max_size"`        // Max retained failure records (default: 1000)
	ErrorQueueMaxAgeSeconds int `mapstructure:"error_queue_max_age_seconds"` // Rolling retention window (default: 3600)

	// Opaque properties handed to the engine at construction time.
	// The host never interprets these.
	EngineProperties map[string]string `mapstructure:"engine_properties"`

	// Metrics enables prometheus instrumentation of the host
	Metrics bool `mapstructure:"metrics"`
}

// ErrorLogConfig configures the durable failure-record log
type ErrorLogConfig struct {
	Enabled     bool   `mapstructure:"enabled"`      // Persist failure records to SQLite (default: false)
	Path        string `mapstructure:"path"`         // Database path (default: manifold.db)
	RetainHours int    `mapstructure:"retain_hours"` // Prune records older than this (default: 168)
}

// LoggingConfig configures log output
type LoggingConfig struct {
	JSON bool `mapstructure:"json"` // JSON structured output instead of console (default: false)
}

// ErrorQueueMaxAge returns the configured queue retention window as a Duration
func (c *HostConfig) ErrorQueueMaxAge() time.Duration {
	return time.Duration(c.ErrorQueueMaxAgeSeconds) * time.Second
}

// RetainFor returns the configured error log retention as a Duration
func (c *ErrorLogConfig) RetainFor() time.Duration {
	return time.Duration(c.RetainHours) * time.Hour
}
