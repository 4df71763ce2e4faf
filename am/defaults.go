package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Host defaults
	v.SetDefault("host.error_queue_max_size", 1000)        // Matches the engine-side per-runtime record cap
	v.SetDefault("host.error_queue_max_age_seconds", 3600) // One hour rolling window
	v.SetDefault("host.metrics", false)

	// Error log defaults
	v.SetDefault("error_log.enabled", false)
	v.SetDefault("error_log.path", "manifold.db")
	v.SetDefault("error_log.retain_hours", 168) // One week of diagnostic history

	// Logging defaults
	v.SetDefault("logging.json", false)
}
