package am

import "github.com/manifoldhq/manifold/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Queue size: 0 = unbounded count is not supported, negative = invalid
	if c.Host.ErrorQueueMaxSize <= 0 {
		return errors.Newf("host.error_queue_max_size must be > 0, got %d", c.Host.ErrorQueueMaxSize)
	}

	// Queue age: 0 = no age bound (valid), negative = invalid
	if c.Host.ErrorQueueMaxAgeSeconds < 0 {
		return errors.Newf("host.error_queue_max_age_seconds must be >= 0, got %d", c.Host.ErrorQueueMaxAgeSeconds)
	}

	// Validate error log configuration only when enabled
	if c.ErrorLog.Enabled {
		if c.ErrorLog.Path == "" {
			return errors.New("error_log.path cannot be empty when enabled")
		}
		if c.ErrorLog.RetainHours <= 0 {
			return errors.Newf("error_log.retain_hours must be > 0, got %d", c.ErrorLog.RetainHours)
		}
	}

	return nil
}
