// Package errors provides error handling for Manifold.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := h.Start(id); err != nil {
//	    return errors.Wrap(err, "failed to start query")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrRegistrationConflict) {
//	    // handle source claim conflict
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the runtime host taxonomy.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrRegistrationConflict indicates a source identifier is already claimed
	// by a different query on the same host
	ErrRegistrationConflict = New("registration conflict")

	// ErrLifecycleViolation indicates a start/stop call that the query's
	// lifecycle state does not permit
	ErrLifecycleViolation = New("lifecycle violation")

	// ErrEngineUnavailable indicates the shared engine is not in a state
	// that can serve the request; fatal, not retried
	ErrEngineUnavailable = New("engine unavailable")

	// ErrHostClosed indicates an operation was invoked after Close completed
	ErrHostClosed = New("runtime host closed")
)

// IsRegistrationConflict checks if an error is or wraps ErrRegistrationConflict
func IsRegistrationConflict(err error) bool {
	return err != nil && Is(err, ErrRegistrationConflict)
}

// IsLifecycleViolation checks if an error is or wraps ErrLifecycleViolation
func IsLifecycleViolation(err error) bool {
	return err != nil && Is(err, ErrLifecycleViolation)
}

// IsEngineUnavailable checks if an error is or wraps ErrEngineUnavailable
func IsEngineUnavailable(err error) bool {
	return err != nil && Is(err, ErrEngineUnavailable)
}

// IsHostClosed checks if an error is or wraps ErrHostClosed
func IsHostClosed(err error) bool {
	return err != nil && Is(err, ErrHostClosed)
}

// NewLifecycleViolation creates a lifecycle violation with a formatted message
func NewLifecycleViolation(format string, args ...interface{}) error {
	return Wrap(ErrLifecycleViolation, Newf(format, args...).Error())
}

// NewRegistrationConflict creates a registration conflict with a formatted message
func NewRegistrationConflict(format string, args ...interface{}) error {
	return Wrap(ErrRegistrationConflict, Newf(format, args...).Error())
}
