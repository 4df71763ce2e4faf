// Package host multiplexes many independently defined stream-processing
// queries onto a single shared execution engine instance, instead of running
// one engine per query.
//
// # Overview
//
// The RuntimeHost coordinates registration, start, and stop of individually
// addressable named computations inside one shared Engine. It intercepts
// failures raised by the engine's worker threads, classifies them, broadcasts
// them to every hosted query's listener, and retains a bounded diagnostic
// history.
//
// # Lifecycle
//
// Per query: registered -> started -> pending_removal -> stopped. The runtime
// is single-start: a query that has ever been started is never restarted
// through the same descriptor. Host-wide: active -> closed, exactly once;
// every operation after Close fails with errors.ErrHostClosed.
//
// # Failure handling
//
// Engine worker threads are shared across all hosted computations, so an
// uncaught failure cannot be attributed to one query. The host classifies the
// failure (degrading to KindUnknown when the classifier itself fails), builds
// one immutable QueryError, delivers it to every hosted listener, appends it
// to the BoundedErrorQueue, and tells the engine to replace only the failed
// thread. The handler never panics: a broken classifier or listener must not
// abort the engine's thread-supervision loop.
//
// # Typical use
//
//	h := host.New(engine, cfg, log)
//	if err := h.Register("q1", []string{"orders"}, topology, listener, classifier); err != nil { ... }
//	if err := h.Start("q1"); err != nil { ... }
//	...
//	if err := h.Stop("q1"); err != nil { ... }
//	_ = h.Close()
package host
