package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across Manifold.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldQueryID = "query_id"
	FieldSource  = "source"
	FieldThread  = "thread"

	// Components
	FieldComponent = "component"

	// Errors
	FieldError     = "error"
	FieldErrorKind = "error_kind"

	// Engine
	FieldEngineState = "engine_state"

	// Counts and sizes
	FieldCount = "count"

	// Status
	FieldState = "state"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	h := host.New(engine, cfg, logger.ComponentLogger("host"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
// Use for sub-operations that need extra context fields.
//
// Example:
//
//	queryLogger := logger.ChildLogger(baseLogger, logger.FieldQueryID, id)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
