package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestSentinelHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		check    func(error) bool
		expected bool
	}{
		{"registration conflict direct", ErrRegistrationConflict, IsRegistrationConflict, true},
		{"registration conflict wrapped", Wrap(ErrRegistrationConflict, "query q1"), IsRegistrationConflict, true},
		{"registration conflict other error", New("other"), IsRegistrationConflict, false},
		{"lifecycle violation wrapped", Wrap(ErrLifecycleViolation, "already started"), IsLifecycleViolation, true},
		{"engine unavailable wrapped", Wrap(ErrEngineUnavailable, "state: ERROR"), IsEngineUnavailable, true},
		{"host closed wrapped", Wrap(ErrHostClosed, "register"), IsHostClosed, true},
		{"nil error", nil, IsLifecycleViolation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.check(tt.err))
		})
	}
}

func TestNewLifecycleViolation(t *testing.T) {
	err := NewLifecycleViolation("query %s not added to runtime", "q1")

	require.NotNil(t, err)
	assert.True(t, Is(err, ErrLifecycleViolation))
	assert.Contains(t, err.Error(), "query q1 not added to runtime")
}

func TestNewRegistrationConflict(t *testing.T) {
	err := NewRegistrationConflict("source %s was not reserved on this runtime", "orders")

	require.NotNil(t, err)
	assert.True(t, Is(err, ErrRegistrationConflict))
	assert.Contains(t, err.Error(), "source orders was not reserved on this runtime")
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, Is(ErrRegistrationConflict, ErrLifecycleViolation))
	assert.False(t, Is(ErrLifecycleViolation, ErrEngineUnavailable))
	assert.False(t, Is(ErrEngineUnavailable, ErrHostClosed))
}
