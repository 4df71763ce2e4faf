package host

import (
	"sync"
)

// QueryID is the opaque unique token naming one hosted computation.
type QueryID string

// QueryState represents the lifecycle state of a hosted query
type QueryState string

const (
	// QueryStateRegistered means the query is known to the host but its
	// computation has not been handed to the engine yet
	QueryStateRegistered QueryState = "registered"
	// QueryStateStarted means the computation is installed in the engine
	QueryStateStarted QueryState = "started"
	// QueryStatePendingRemoval means Stop was issued but the engine has not
	// confirmed removal yet; Start calls in this window fail
	QueryStatePendingRemoval QueryState = "pending_removal"
	// QueryStateStopped means the engine no longer holds the computation
	QueryStateStopped QueryState = "stopped"
)

// IsValidState returns true if the string is a valid QueryState
func IsValidState(s string) bool {
	switch QueryState(s) {
	case QueryStateRegistered, QueryStateStarted, QueryStatePendingRemoval, QueryStateStopped:
		return true
	default:
		return false
	}
}

// Listener receives failure records for a hosted query.
//
// Because engine worker threads are shared across every hosted computation,
// the origin of a failure cannot be attributed to a single query; listeners
// therefore receive every failure raised on the shared runtime, not only
// failures from their own query's logic.
//
// OnError is fire-and-forget: the host does not isolate itself from a slow or
// blocking listener, so implementations should return quickly.
type Listener interface {
	OnError(desc *QueryDescriptor, qerr QueryError)
}

// QueryDescriptor is the host-owned per-query record: identity, claimed
// sources, compiled computation, and lifecycle state. Created on Register,
// mutated on Start/Stop, owned exclusively by the RuntimeHost.
type QueryDescriptor struct {
	id          QueryID
	sources     []string
	computation Computation
	listener    Listener

	mu          sync.Mutex
	everStarted bool
	state       QueryState
}

func newQueryDescriptor(id QueryID, sources []string, computation Computation, listener Listener) *QueryDescriptor {
	return &QueryDescriptor{
		id:          id,
		sources:     sources,
		computation: computation,
		listener:    listener,
		state:       QueryStateRegistered,
	}
}

// ID returns the query identifier
func (d *QueryDescriptor) ID() QueryID {
	return d.id
}

// Sources returns a copy of the claimed source identifiers
func (d *QueryDescriptor) Sources() []string {
	out := make([]string, len(d.sources))
	copy(out, d.sources)
	return out
}

// Computation returns the opaque compiled computation definition
func (d *QueryDescriptor) Computation() Computation {
	return d.computation
}

// Listener returns the query's failure listener
func (d *QueryDescriptor) Listener() Listener {
	return d.listener
}

// State returns the query's current lifecycle state
func (d *QueryDescriptor) State() QueryState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// EverStarted reports whether Start has ever succeeded for this query.
// The runtime is single-start: once true, the descriptor can never be
// started again.
func (d *QueryDescriptor) EverStarted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.everStarted
}

// markStarted records a successful Start
func (d *QueryDescriptor) markStarted() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.everStarted = true
	d.state = QueryStateStarted
}

// markPendingRemoval records an accepted removal request
func (d *QueryDescriptor) markPendingRemoval() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = QueryStatePendingRemoval
}

// resolveRemoved transitions pending_removal to stopped. Returns true when
// the transition happened.
func (d *QueryDescriptor) resolveRemoved() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != QueryStatePendingRemoval {
		return false
	}
	d.state = QueryStateStopped
	return true
}
