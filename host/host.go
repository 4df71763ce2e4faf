package host

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/manifoldhq/manifold/am"
	"github.com/manifoldhq/manifold/errors"
)

// RuntimeHost multiplexes many independently defined queries onto one shared
// engine instance. It owns the engine, the query registry, the bounded error
// queue, and the currently active failure classifier, and serves as the
// engine's uncaught-failure handler.
//
// Concurrency: two domains interact with the host. External control callers
// invoke Register/Start/Stop/Close, potentially from multiple goroutines, and
// every engine worker thread may invoke UncaughtHandler concurrently with all
// of that. Close is the sole exclusive writer on the lifecycle lock; all other
// operations share it. Registry maps and the error queue carry their own
// locks, so failure recording is never serialized behind registration traffic.
type RuntimeHost struct {
	engine   Engine
	reg      *registry
	queue    *BoundedErrorQueue
	errorLog *ErrorLog // optional durable sink, best-effort
	metrics  *Metrics  // optional, nil-safe
	log      *zap.SugaredLogger

	lifecycle sync.RWMutex
	closed    bool

	// Host-wide single active classifier, replaced on every Register call.
	// Failures arrive at thread granularity with no query attribution, so a
	// per-query classifier could not be applied correctly at failure time.
	classifierMu sync.RWMutex
	classifier   Classifier

	// fanoutMu keeps broadcast and queue append in one submission order when
	// several worker threads fail at once
	fanoutMu sync.Mutex
}

// New creates a runtime host around an engine and starts it.
func New(engine Engine, cfg *am.Config, log *zap.SugaredLogger) *RuntimeHost {
	return NewWithSinks(engine, cfg, log, nil, nil)
}

// NewWithSinks creates a runtime host with optional observability sinks:
// a durable error log and prometheus metrics. Either may be nil.
func NewWithSinks(engine Engine, cfg *am.Config, log *zap.SugaredLogger, errorLog *ErrorLog, metrics *Metrics) *RuntimeHost {
	h := &RuntimeHost{
		engine:     engine,
		reg:        newRegistry(),
		queue:      NewBoundedErrorQueue(cfg.Host.ErrorQueueMaxAge(), cfg.Host.ErrorQueueMaxSize),
		errorLog:   errorLog,
		metrics:    metrics,
		log:        log.Named("host"),
		classifier: HeuristicClassifier{},
	}

	engine.Start()
	return h
}

// Register records a source claim and descriptor for a query.
//
// A known id is idempotent: the descriptor is neither re-validated nor
// duplicated, but the host-wide active classifier is still replaced. A source
// already claimed by a different query fails with ErrRegistrationConflict.
func (h *RuntimeHost) Register(id QueryID, sourceIDs []string, computation Computation, listener Listener, classifier Classifier) error {
	h.lifecycle.RLock()
	defer h.lifecycle.RUnlock()
	if h.closed {
		return errors.Wrapf(errors.ErrHostClosed, "register %s", id)
	}

	if id == "" {
		return errors.New("query id must be non-empty")
	}
	if len(sourceIDs) == 0 {
		return errors.Newf("query %s: claimed source set must be non-empty", id)
	}

	created, err := h.reg.register(id, sourceIDs, computation, listener)
	if err != nil {
		return err
	}

	// The classifier slot is host-wide and swapped on every register call,
	// idempotent re-registration included. A nil classifier keeps the
	// current one.
	if classifier != nil {
		h.classifierMu.Lock()
		h.classifier = classifier
		h.classifierMu.Unlock()
	}

	if created {
		h.metrics.observeRegistered(h.reg.size())
		h.log.Infow("Registered query on shared runtime",
			"query_id", id,
			"sources", sourceIDs,
			"count", h.reg.size())
	}
	return nil
}

// Start hands the query's computation to the engine.
//
// The runtime is single-start: a query that has ever been started cannot be
// started again through the same descriptor. Fails with ErrLifecycleViolation
// when the query is unknown, already started, or its computation is still
// being removed from the engine after a Stop.
func (h *RuntimeHost) Start(id QueryID) error {
	h.lifecycle.RLock()
	defer h.lifecycle.RUnlock()
	if h.closed {
		return errors.Wrapf(errors.ErrHostClosed, "start %s", id)
	}

	desc, ok := h.reg.descriptor(id)
	if !ok {
		return errors.NewLifecycleViolation("query %s not added to runtime", id)
	}

	h.resolveRemoval(desc)

	if desc.EverStarted() {
		return errors.NewLifecycleViolation("query %s was already started on this runtime", id)
	}

	if _, present := h.engine.ComputationByName(id); present {
		return errors.NewLifecycleViolation("not done removing query %s", id)
	}

	if err := h.engine.AddNamedComputation(id, desc.Computation()); err != nil {
		return errors.Wrapf(err, "failed to add computation for query %s", id)
	}

	desc.markStarted()
	h.metrics.observeStart()
	h.log.Infow("Started query", "query_id", id)
	return nil
}

// Stop requests removal of the query's computation from the engine.
//
// Removal is asynchronous: the descriptor moves to pending_removal and is
// resolved to stopped once the engine no longer reports the computation. A
// Start issued before removal finishes fails with ErrLifecycleViolation.
// Fails with ErrEngineUnavailable when the engine is not running or
// rebalancing; that failure is fatal and not retried here.
func (h *RuntimeHost) Stop(id QueryID) error {
	h.lifecycle.RLock()
	defer h.lifecycle.RUnlock()
	if h.closed {
		return errors.Wrapf(errors.ErrHostClosed, "stop %s", id)
	}

	desc, ok := h.reg.descriptor(id)
	if !ok || !h.reg.hasClaim(id) {
		return errors.NewLifecycleViolation("query %s not added to runtime", id)
	}

	if st := h.engine.State(); !st.IsRunningOrRebalancing() {
		return errors.Wrapf(errors.ErrEngineUnavailable, "engine is not running but in state %s", st)
	}

	h.log.Infow("Attempting to stop query", "query_id", id)
	if err := h.engine.RemoveNamedComputation(id); err != nil {
		return errors.Wrapf(err, "failed to request removal of query %s", id)
	}

	desc.markPendingRemoval()
	h.metrics.observeStop()
	return nil
}

// Close shuts the engine down entirely and releases its local resources.
// Exclusive and irreversible: every host operation afterwards, Close
// included, fails fast with ErrHostClosed.
func (h *RuntimeHost) Close() error {
	h.lifecycle.Lock()
	defer h.lifecycle.Unlock()
	if h.closed {
		return errors.Wrap(errors.ErrHostClosed, "close")
	}
	h.closed = true

	h.log.Infow("Closing shared runtime", "queries", h.reg.size())

	closeErr := h.engine.Close()
	cleanupErr := h.engine.CleanUp()

	if closeErr != nil {
		return errors.Wrap(closeErr, "failed to close engine")
	}
	if cleanupErr != nil {
		return errors.Wrap(cleanupErr, "failed to clean up engine")
	}
	return nil
}

// UncaughtHandler is the engine's uncaught-failure callback. Worker threads
// are shared across all hosted computations, so the failing query is not
// determinable; the record is broadcast to every hosted listener instead of
// targeted delivery.
//
// One record is built unconditionally, classification failure or not, so
// every uncaught failure stays observable even when the classifier is broken.
// The handler never panics and never asks for more than replacing the failed
// thread: unrelated queries keep running.
func (h *RuntimeHost) UncaughtHandler(thread string, failure error) ThreadDecision {
	h.lifecycle.RLock()
	defer h.lifecycle.RUnlock()
	if h.closed {
		h.log.Warnw("Dropping uncaught failure reported after close",
			"thread", thread, "error", failure)
		return ReplaceThread
	}

	kind := h.classify(failure)
	record := NewQueryError(failure, kind, time.Now())

	h.fanoutMu.Lock()
	for _, desc := range h.reg.snapshot() {
		h.notify(desc, record)
	}
	h.queue.Append(record)
	h.fanoutMu.Unlock()

	if h.errorLog != nil {
		if err := h.errorLog.Append(record); err != nil {
			h.log.Warnw("Failed to persist failure record", "error", err)
		}
	}

	h.metrics.observeFailure(kind, h.queue.Len())
	h.log.Errorw("Uncaught failure in engine worker thread",
		"thread", thread,
		"error_kind", kind,
		"error", failure)

	return ReplaceThread
}

// classify runs the active classifier, degrading any error or panic from it
// to KindUnknown. Classification failure is logged and never propagated.
func (h *RuntimeHost) classify(failure error) (kind Kind) {
	kind = KindUnknown

	h.classifierMu.RLock()
	classifier := h.classifier
	h.classifierMu.RUnlock()
	if classifier == nil {
		return kind
	}

	defer func() {
		if r := recover(); r != nil {
			kind = KindUnknown
			h.log.Errorw("Panic classifying uncaught failure", "panic", r)
		}
	}()

	classified, err := classifier.Classify(failure)
	if err != nil {
		h.log.Errorw("Error classifying uncaught failure", "error", err)
		return KindUnknown
	}
	return classified
}

// notify delivers one record to one listener, containing any panic so a
// broken listener cannot abort the fan-out or escape back to the engine.
func (h *RuntimeHost) notify(desc *QueryDescriptor, record QueryError) {
	listener := desc.Listener()
	if listener == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			h.log.Errorw("Panic in query error listener",
				"query_id", desc.ID(), "panic", r)
		}
	}()
	listener.OnError(desc, record)
}

// Descriptor returns the descriptor for id, resolving pending removal
// against the engine first.
func (h *RuntimeHost) Descriptor(id QueryID) (*QueryDescriptor, bool) {
	desc, ok := h.reg.descriptor(id)
	if !ok {
		return nil, false
	}
	h.resolveRemoval(desc)
	return desc, true
}

// QueryErrors returns a snapshot of the bounded error queue, oldest first
func (h *RuntimeHost) QueryErrors() []QueryError {
	return h.queue.Snapshot()
}

// Queries returns every hosted query id in registration order
func (h *RuntimeHost) Queries() []QueryID {
	descs := h.reg.snapshot()
	out := make([]QueryID, 0, len(descs))
	for _, d := range descs {
		out = append(out, d.ID())
	}
	return out
}

// resolveRemoval polls the engine for a pending removal and transitions the
// descriptor to stopped once the computation is gone. Removal carries no
// completion signal from the engine, so this check runs on Start and on
// descriptor reads.
func (h *RuntimeHost) resolveRemoval(desc *QueryDescriptor) {
	if desc.State() != QueryStatePendingRemoval {
		return
	}
	if _, present := h.engine.ComputationByName(desc.ID()); present {
		return
	}
	if desc.resolveRemoved() {
		h.log.Infow("Query removal completed", "query_id", desc.ID())
	}
}
