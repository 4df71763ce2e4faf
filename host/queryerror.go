package host

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind classifies an uncaught worker failure
type Kind string

const (
	// KindUser marks failures caused by a query's own logic or inputs
	KindUser Kind = "user"
	// KindSystem marks failures in the engine or its infrastructure
	KindSystem Kind = "system"
	// KindNetwork marks connectivity failures to external systems
	KindNetwork Kind = "network"
	// KindTimeout marks deadline and timeout failures
	KindTimeout Kind = "timeout"
	// KindUnknown is the fallback when classification fails or matches nothing
	KindUnknown Kind = "unknown"
)

// Classifier maps a raw failure value onto the Kind taxonomy.
//
// The host keeps one active classifier for the whole runtime, replaced on
// every Register call. Classify may itself fail; the host degrades that to
// KindUnknown and never lets it block failure recording.
type Classifier interface {
	Classify(failure error) (Kind, error)
}

// QueryError is one immutable diagnostic record for an uncaught worker
// failure. Built unconditionally for every failure the engine reports,
// whether or not classification succeeded.
type QueryError struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Trace     string    `json:"trace"` // Formatted failure trace, stack included when available
	Kind      Kind      `json:"kind"`
}

// NewQueryError builds a failure record from a raw failure value.
// The %+v formatting renders the full stack trace for errors carrying one
// (anything built through the errors package does).
func NewQueryError(failure error, kind Kind, at time.Time) QueryError {
	return QueryError{
		ID:        uuid.NewString(),
		Timestamp: at,
		Trace:     fmt.Sprintf("%+v", failure),
		Kind:      kind,
	}
}
