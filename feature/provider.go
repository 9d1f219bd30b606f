package feature

import "context"

// Provider-kind names accepted by the factory, matched case-insensitively.
const (
	KindLocalStorage = "local storage"
	KindCookie       = "cookie"
	KindHTTPHeader   = "http-header"
)

// remoteKindPrefix selects the remote evaluation path. The text after the
// delimiter names the backend, e.g. "openfeature|flagd".
const remoteKindPrefix = "openfeature|"

// ReadyCallback is a removable readiness subscription. It is a pointer to
// a function so the same callback can later be unsubscribed by identity.
type ReadyCallback *func()

// Provider evaluates, and optionally persists, one feature flag's value
// from a specific backing source.
//
// Evaluate never fails: when no value can be determined the flag is
// reported as disabled.
type Provider interface {
	// Feature returns the feature name this provider was built for.
	Feature() string
	// Name returns the adapter kind name, e.g. "local-storage".
	Name() string
	// Evaluate returns the current flag state.
	Evaluate(ctx context.Context) bool
	// Persist writes a new flag state to the backing source, best effort.
	// Read-only adapters accept and ignore the write.
	Persist(ctx context.Context, enabled bool) error
	// OnReady subscribes cb to the readiness event of an asynchronously
	// initializing source. Synchronous adapters ignore it.
	OnReady(cb ReadyCallback)
	// OnTeardown removes a subscription previously added with OnReady.
	OnTeardown(cb ReadyCallback)
}
