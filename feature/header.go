package feature

import (
	"context"

	"github.com/kbukum/flagkit/httpstate"
)

// flagsHeader is the response header carrying the enabled-feature list.
const flagsHeader = "x-feature-flags"

// HeaderProvider evaluates a flag from the latest HTTP response headers.
// Read-only, like the cookie provider.
type HeaderProvider struct {
	NoopProvider
	state *httpstate.State
}

// NewHeaderProvider creates a provider reading from state. Passing nil
// uses the process-wide snapshot.
func NewHeaderProvider(featureName string, state *httpstate.State) *HeaderProvider {
	if state == nil {
		state = httpstate.Default()
	}
	return &HeaderProvider{
		NoopProvider: NoopProvider{feature: featureName},
		state:        state,
	}
}

// Name returns "http-header".
func (p *HeaderProvider) Name() string { return "http-header" }

// Evaluate refreshes the header snapshot, then reports membership of the
// feature name in the x-feature-flags list. Headers change between
// requests, so the snapshot is re-pulled on every call rather than cached.
func (p *HeaderProvider) Evaluate(_ context.Context) bool {
	p.state.Refresh()
	return containsFeature(p.state.Header(flagsHeader), p.Feature())
}
