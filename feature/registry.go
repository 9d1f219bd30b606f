package feature

import (
	"fmt"
	"sync"
)

// BackendFlagd selects the flagd remote backend. It is the only backend
// implemented today; dialBackend is the dispatch point for siblings.
const BackendFlagd = "flagd"

// DialFunc constructs and globally registers an evaluation client for a
// backend/endpoint pair.
type DialFunc func(backend string, ep Endpoint) (Evaluator, error)

// ClientRegistry caches one evaluation client per distinct remote
// endpoint, so repeated flag lookups against the same target share a
// session instead of reconnecting per flag.
//
// The registry is explicit state rather than an implicit package global
// so tests can run against a fresh, isolated one; production code
// normally uses DefaultRegistry.
type ClientRegistry struct {
	mu      sync.Mutex
	dial    DialFunc
	clients map[string]Evaluator
}

// NewClientRegistry creates a registry. A nil dial uses the built-in
// backend dispatch.
func NewClientRegistry(dial DialFunc) *ClientRegistry {
	if dial == nil {
		dial = dialBackend
	}
	return &ClientRegistry{
		dial:    dial,
		clients: make(map[string]Evaluator),
	}
}

// DefaultRegistry is the process-wide registry used by the package-level
// factory. Entries live for the lifetime of the process.
var DefaultRegistry = NewClientRegistry(nil)

// clientKey derives the cache key from the backend and the connection
// parameters, never from mutable adapter state.
func clientKey(backend string, ep Endpoint) string {
	return backend + "|" + ep.Addr()
}

// Evaluator returns the client for backend/ep, dialing it on first use.
// Check-then-create runs under the lock so concurrent construction of
// adapters for the same endpoint still yields exactly one client.
func (r *ClientRegistry) Evaluator(backend string, ep Endpoint) (Evaluator, error) {
	key := clientKey(backend, ep)
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev, ok := r.clients[key]; ok {
		return ev, nil
	}
	ev, err := r.dial(backend, ep)
	if err != nil {
		return nil, err
	}
	r.clients[key] = ev
	return ev, nil
}

// Lookup returns the cached client for key, if any. It never dials.
func (r *ClientRegistry) Lookup(key string) (Evaluator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.clients[key]
	return ev, ok
}

// Len reports the number of live clients.
func (r *ClientRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// dialBackend dispatches to the concrete backend implementation.
func dialBackend(backend string, ep Endpoint) (Evaluator, error) {
	switch backend {
	case BackendFlagd:
		return dialFlagd(ep)
	default:
		return nil, fmt.Errorf("feature: unknown remote backend %q", backend)
	}
}
