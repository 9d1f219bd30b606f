package feature

import "context"

// NoopProvider is the base adapter: every capability degrades to the safe
// default. The factory returns it for unrecognized provider kinds so a
// misconfigured flag check reports disabled instead of failing, and the
// concrete adapters embed it to inherit the defaults they do not support.
type NoopProvider struct {
	feature string
}

// NewNoopProvider creates an all-disabled provider for featureName.
func NewNoopProvider(featureName string) *NoopProvider {
	return &NoopProvider{feature: featureName}
}

// Feature returns the feature name.
func (p *NoopProvider) Feature() string { return p.feature }

// Name returns "noop".
func (p *NoopProvider) Name() string { return "noop" }

// Evaluate always reports the flag disabled.
func (p *NoopProvider) Evaluate(_ context.Context) bool { return false }

// Persist does nothing.
func (p *NoopProvider) Persist(_ context.Context, _ bool) error { return nil }

// OnReady does nothing; there is no asynchronous source to wait for.
func (p *NoopProvider) OnReady(_ ReadyCallback) {}

// OnTeardown does nothing.
func (p *NoopProvider) OnTeardown(_ ReadyCallback) {}
