package host

// EngineState represents the overall state of the shared execution engine.
type EngineState string

const (
	EngineStateCreated         EngineState = "created"
	EngineStateRebalancing     EngineState = "rebalancing"
	EngineStateRunning         EngineState = "running"
	EngineStatePendingShutdown EngineState = "pending_shutdown"
	EngineStateNotRunning      EngineState = "not_running"
	EngineStateError           EngineState = "error"
)

// IsRunningOrRebalancing returns true when the engine can accept
// computation removal requests.
func (s EngineState) IsRunningOrRebalancing() bool {
	return s == EngineStateRunning || s == EngineStateRebalancing
}

// ThreadDecision is the recovery decision returned from the uncaught-failure
// handler back to the engine's thread supervision loop.
type ThreadDecision string

const (
	// ReplaceThread replaces only the failed worker thread, keeping every
	// hosted computation running. This is the only decision the host ever
	// returns: failure isolation stays scoped to the smallest unit.
	ReplaceThread ThreadDecision = "replace_thread"

	// ShutdownEngine shuts the whole shared engine down. Part of the engine
	// contract; never produced by the host.
	ShutdownEngine ThreadDecision = "shutdown_engine"
)

// Computation is the opaque compiled definition of one hosted query.
// The host hands it to the engine unmodified and never inspects it.
type Computation interface{}

// Engine is the shared execution runtime that actually runs named
// computations. It is an external collaborator: the host coordinates it but
// implements none of its dataflow.
//
// Engine worker threads are shared across every hosted computation, and each
// of them may invoke the host's uncaught-failure handler concurrently.
type Engine interface {
	// Start begins engine execution. Called once by the host constructor.
	Start()

	// AddNamedComputation installs a computation under the given identifier.
	// Fails if the identifier is already present.
	AddNamedComputation(id QueryID, def Computation) error

	// RemoveNamedComputation requests removal of the named computation.
	// Removal is asynchronous and best-effort; a nil return means the
	// request was accepted, not that removal completed.
	RemoveNamedComputation(id QueryID) error

	// ComputationByName reports whether the engine currently holds a
	// computation under the given identifier.
	ComputationByName(id QueryID) (Computation, bool)

	// State returns the engine's overall state.
	State() EngineState

	// Close shuts the engine down entirely.
	Close() error

	// CleanUp releases the engine's local resources. Only valid after Close.
	CleanUp() error
}
