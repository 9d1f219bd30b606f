package feature

import (
	"context"
	"testing"

	"github.com/kbukum/flagkit/httpstate"
)

func TestHeaderMembership(t *testing.T) {
	ctx := context.Background()
	state := httpstate.NewState()
	state.SetHeaders(map[string]string{"x-feature-flags": "gamma|delta"})

	if !NewHeaderProvider("gamma", state).Evaluate(ctx) {
		t.Error("expected 'gamma' enabled by header 'gamma|delta'")
	}
	if NewHeaderProvider("gam", state).Evaluate(ctx) {
		t.Error("expected 'gam' disabled: partial names must not match")
	}
}

func TestHeaderAbsent(t *testing.T) {
	ctx := context.Background()
	state := httpstate.NewState()
	if NewHeaderProvider("gamma", state).Evaluate(ctx) {
		t.Error("expected false with no header present")
	}
}

func TestHeaderRefreshesBeforeEveryEvaluate(t *testing.T) {
	ctx := context.Background()
	state := httpstate.NewState()
	latest := map[string]string{"x-feature-flags": "gamma|delta"}
	state.SetRefreshFunc(func() map[string]string { return latest })

	p := NewHeaderProvider("gamma", state)
	if !p.Evaluate(ctx) {
		t.Fatal("expected 'gamma' enabled initially")
	}

	// The next response dropped gamma; the provider must see it on the
	// very next call instead of serving a cached snapshot.
	latest = map[string]string{"x-feature-flags": "delta"}
	if p.Evaluate(ctx) {
		t.Error("expected 'gamma' disabled after the header changed")
	}
}
