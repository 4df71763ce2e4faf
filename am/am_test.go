package am

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Host.ErrorQueueMaxSize)
	assert.Equal(t, 3600, cfg.Host.ErrorQueueMaxAgeSeconds)
	assert.Equal(t, time.Hour, cfg.Host.ErrorQueueMaxAge())
	assert.False(t, cfg.ErrorLog.Enabled)
	assert.Equal(t, "manifold.db", cfg.ErrorLog.Path)
	assert.Equal(t, 168*time.Hour, cfg.ErrorLog.RetainFor())
	assert.False(t, cfg.Logging.JSON)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifold.toml")

	content := `
[host]
error_queue_max_size = 25
error_queue_max_age_seconds = 120
metrics = true

[host.engine_properties]
guarantee = "exactly_once_v2"
threads = "4"

[error_log]
enabled = true
path = "diag.db"
retain_hours = 24
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Host.ErrorQueueMaxSize)
	assert.Equal(t, 2*time.Minute, cfg.Host.ErrorQueueMaxAge())
	assert.True(t, cfg.Host.Metrics)
	assert.Equal(t, "exactly_once_v2", cfg.Host.EngineProperties["guarantee"])
	assert.Equal(t, "4", cfg.Host.EngineProperties["threads"])
	assert.True(t, cfg.ErrorLog.Enabled)
	assert.Equal(t, "diag.db", cfg.ErrorLog.Path)
	assert.Equal(t, 24*time.Hour, cfg.ErrorLog.RetainFor())
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		v := viper.New()
		SetDefaults(v)
		cfg, err := LoadWithViper(v)
		require.NoError(t, err)
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("zero queue size rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Host.ErrorQueueMaxSize = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("negative queue age rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Host.ErrorQueueMaxAgeSeconds = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("zero queue age is no age bound", func(t *testing.T) {
		cfg := valid()
		cfg.Host.ErrorQueueMaxAgeSeconds = 0
		require.NoError(t, cfg.Validate())
	})

	t.Run("enabled error log requires path", func(t *testing.T) {
		cfg := valid()
		cfg.ErrorLog.Enabled = true
		cfg.ErrorLog.Path = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("enabled error log requires retention", func(t *testing.T) {
		cfg := valid()
		cfg.ErrorLog.Enabled = true
		cfg.ErrorLog.RetainHours = 0
		require.Error(t, cfg.Validate())
	})
}

func TestReset(t *testing.T) {
	Reset()
	cfg1, err := Load()
	require.NoError(t, err)

	Reset()
	cfg2, err := Load()
	require.NoError(t, err)

	// Fresh instances after reset, not the cached pointer
	assert.NotSame(t, cfg1, cfg2)
}
