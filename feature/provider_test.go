package feature

import (
	"context"
	"testing"

	"github.com/kbukum/flagkit/httpstate"
	"github.com/kbukum/flagkit/store"
)

func TestNoopProviderDefaults(t *testing.T) {
	ctx := context.Background()
	p := NewNoopProvider("anything")

	if p.Feature() != "anything" {
		t.Errorf("expected feature name preserved, got %q", p.Feature())
	}
	if p.Evaluate(ctx) {
		t.Error("expected noop provider to evaluate false")
	}
	if err := p.Persist(ctx, true); err != nil {
		t.Errorf("expected persist no-op, got %v", err)
	}
	if p.Evaluate(ctx) {
		t.Error("expected noop provider to stay false after persist")
	}

	fired := false
	notify := func() { fired = true }
	p.OnReady(ReadyCallback(&notify))
	p.OnTeardown(ReadyCallback(&notify))
	if fired {
		t.Error("expected lifecycle hooks to be no-ops")
	}
}

func TestAllKindsDefaultDisabled(t *testing.T) {
	ctx := context.Background()
	factory := NewFactory(FactoryConfig{
		Store:    store.NewMemoryStore(),
		State:    httpstate.NewState(),
		Registry: NewClientRegistry(fakeDial(&dialCount{})),
	})

	kinds := []struct {
		kind    string
		options string
	}{
		{KindLocalStorage, ""},
		{KindCookie, ""},
		{KindHTTPHeader, ""},
		{"openfeature|flagd", "http://localhost:8013"},
	}
	for _, tc := range kinds {
		t.Run(tc.kind, func(t *testing.T) {
			p, err := factory.New("fresh-feature", tc.kind, tc.options)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if p.Evaluate(ctx) {
				t.Errorf("expected %q provider with no prior state to evaluate false", tc.kind)
			}
		})
	}
}
