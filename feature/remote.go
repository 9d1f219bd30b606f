package feature

import (
	"context"

	"github.com/kbukum/flagkit/logger"
)

// RemoteProvider evaluates a flag through a shared remote evaluation
// client. Construction wires the client; Evaluate reads whatever value
// the client currently has, so callers that must distinguish "not yet
// connected" from "disabled" subscribe with OnReady instead of polling.
type RemoteProvider struct {
	NoopProvider
	backend  string
	registry *ClientRegistry
	key      string // registry key; empty when no endpoint is configured
	log      *logger.Logger
}

// NewRemoteProvider builds a remote adapter for backend (e.g.
// BackendFlagd) from the options URI, reusing the registry's client for
// the endpoint or dialing a new one. Empty options produce an adapter
// that reports every flag disabled, per the safe-default contract; a
// malformed URI is the one construction error.
func NewRemoteProvider(featureName, backend, options string, registry *ClientRegistry) (*RemoteProvider, error) {
	if registry == nil {
		registry = DefaultRegistry
	}
	p := &RemoteProvider{
		NoopProvider: NoopProvider{feature: featureName},
		backend:      backend,
		registry:     registry,
		log:          logger.Get("feature.remote"),
	}
	if options == "" {
		p.log.Warn("no endpoint configured, flag always evaluates disabled", logger.Fields(
			logger.FieldFeature, featureName,
			logger.FieldBackend, backend,
		))
		return p, nil
	}

	ep, err := ParseEndpoint(options)
	if err != nil {
		return nil, err
	}
	if _, err := registry.Evaluator(backend, ep); err != nil {
		// The client could not be registered; the flag degrades to the
		// disabled default instead of failing the caller.
		p.log.Warn("remote client unavailable", logger.Fields(
			logger.FieldFeature, featureName,
			logger.FieldEndpoint, ep.Addr(),
			logger.FieldError, err.Error(),
		))
		return p, nil
	}
	p.key = clientKey(backend, ep)
	return p, nil
}

// Name returns the backend name, e.g. "flagd".
func (p *RemoteProvider) Name() string { return p.backend }

// Evaluate looks the shared client up by its registry key and asks for
// the flag's value with a disabled default. Before the client connects,
// and on any evaluation failure, the flag reads as disabled.
func (p *RemoteProvider) Evaluate(ctx context.Context) bool {
	ev, ok := p.lookup()
	if !ok {
		return false
	}
	return ev.BooleanValue(ctx, p.Feature(), false)
}

// OnReady forwards cb to the shared client's ready event. The event
// subscription is client-wide; this adapter only adds its own callback.
func (p *RemoteProvider) OnReady(cb ReadyCallback) {
	if ev, ok := p.lookup(); ok {
		ev.AddReadyHandler(cb)
	}
}

// OnTeardown removes exactly the callback cb, leaving other adapters'
// subscriptions on the same client untouched.
func (p *RemoteProvider) OnTeardown(cb ReadyCallback) {
	if ev, ok := p.lookup(); ok {
		ev.RemoveReadyHandler(cb)
	}
}

func (p *RemoteProvider) lookup() (Evaluator, bool) {
	if p.registry == nil || p.key == "" {
		return nil, false
	}
	return p.registry.Lookup(p.key)
}
