package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerIsNeverNil(t *testing.T) {
	// Package init installs a no-op logger, so callers before Initialize()
	// must not panic.
	require.NotNil(t, Logger)
	Infow("safe before initialize", "key", "value")
	Errorw("also safe", FieldError, "boom")
}

func TestInitializeJSON(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	err := Initialize(true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestInitializeConsole(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	err := Initialize(false)
	require.NoError(t, err)
	assert.False(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestComponentLogger(t *testing.T) {
	named := ComponentLogger("host")
	require.NotNil(t, named)
}

func TestChildLogger(t *testing.T) {
	base := zap.NewNop().Sugar()
	child := ChildLogger(base, FieldQueryID, "q1")
	require.NotNil(t, child)
	child.Infow("child logger is usable")
}
