package host

import (
	"sync"

	"github.com/manifoldhq/manifold/errors"
)

// registry maps query identifiers to their descriptors and claimed source
// identifiers. Critical sections are short: the failure handler snapshots
// descriptors under RLock on every invocation, interleaved with occasional
// mutating writes from Register/Start/Stop.
//
// Invariant: every registered query's claimed-source set is non-empty and
// disjoint from every other registered query's set.
type registry struct {
	mu          sync.RWMutex
	descriptors map[QueryID]*QueryDescriptor
	sources     map[QueryID][]string
	order       []QueryID // registration order, for deterministic fan-out
}

func newRegistry() *registry {
	return &registry{
		descriptors: make(map[QueryID]*QueryDescriptor),
		sources:     make(map[QueryID][]string),
	}
}

// register records a source claim and creates a descriptor. A known id is
// idempotent: nothing is re-validated or duplicated and (false, nil) is
// returned. A source claimed by a different id fails with
// ErrRegistrationConflict.
func (r *registry) register(id QueryID, sourceIDs []string, computation Computation, listener Listener) (created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, known := r.descriptors[id]; known {
		return false, nil
	}

	claimed := make(map[string]QueryID, len(r.sources))
	for owner, srcs := range r.sources {
		for _, s := range srcs {
			claimed[s] = owner
		}
	}
	for _, s := range sourceIDs {
		if owner, taken := claimed[s]; taken {
			return false, errors.NewRegistrationConflict(
				"%s: source %s was not reserved on this runtime (claimed by %s)", id, s, owner)
		}
	}

	srcs := make([]string, len(sourceIDs))
	copy(srcs, sourceIDs)
	r.sources[id] = srcs
	r.descriptors[id] = newQueryDescriptor(id, srcs, computation, listener)
	r.order = append(r.order, id)
	return true, nil
}

// descriptor returns the descriptor for id
func (r *registry) descriptor(id QueryID) (*QueryDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[id]
	return d, ok
}

// hasClaim reports whether id holds a source claim
func (r *registry) hasClaim(id QueryID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sources[id]
	return ok
}

// snapshot returns every hosted descriptor in registration order
func (r *registry) snapshot() []*QueryDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*QueryDescriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.descriptors[id])
	}
	return out
}

// size returns the number of registered queries
func (r *registry) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}
