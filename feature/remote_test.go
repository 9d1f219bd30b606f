package feature

import (
	"context"
	"sync"
	"testing"
)

// fakeEvaluator is a controllable Evaluator for registry and remote
// provider tests.
type fakeEvaluator struct {
	name string

	mu       sync.Mutex
	ready    bool
	flags    map[string]bool
	handlers []ReadyCallback
}

func newFakeEvaluator(name string) *fakeEvaluator {
	return &fakeEvaluator{name: name, flags: make(map[string]bool)}
}

func (f *fakeEvaluator) Name() string { return f.name }

func (f *fakeEvaluator) BooleanValue(_ context.Context, flagName string, defaultValue bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ready {
		return defaultValue
	}
	if v, ok := f.flags[flagName]; ok {
		return v
	}
	return defaultValue
}

func (f *fakeEvaluator) AddReadyHandler(cb ReadyCallback) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(f.handlers, cb)
}

func (f *fakeEvaluator) RemoveReadyHandler(cb ReadyCallback) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, h := range f.handlers {
		if h == cb {
			f.handlers = append(f.handlers[:i], f.handlers[i+1:]...)
			return
		}
	}
}

// markReady flips the evaluator to connected and fires all subscribers.
func (f *fakeEvaluator) markReady() {
	f.mu.Lock()
	f.ready = true
	handlers := make([]ReadyCallback, len(f.handlers))
	copy(handlers, f.handlers)
	f.mu.Unlock()
	for _, h := range handlers {
		(*h)()
	}
}

func (f *fakeEvaluator) setFlag(name string, enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flags[name] = enabled
}

func (f *fakeEvaluator) handlerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handlers)
}

type dialCount struct {
	mu    sync.Mutex
	n     int
	dials []*fakeEvaluator
}

// fakeDial builds fake evaluators and counts how often it is invoked.
func fakeDial(count *dialCount) DialFunc {
	return func(backend string, ep Endpoint) (Evaluator, error) {
		count.mu.Lock()
		defer count.mu.Unlock()
		count.n++
		ev := newFakeEvaluator(backend + "|" + ep.Addr())
		count.dials = append(count.dials, ev)
		return ev, nil
	}
}

func TestRegistryDedupesClientsPerEndpoint(t *testing.T) {
	count := &dialCount{}
	registry := NewClientRegistry(fakeDial(count))

	a, err := NewRemoteProvider("feature-a", BackendFlagd, "http://flags.internal:8013", registry)
	if err != nil {
		t.Fatalf("NewRemoteProvider failed: %v", err)
	}
	b, err := NewRemoteProvider("feature-b", BackendFlagd, "http://flags.internal:8013", registry)
	if err != nil {
		t.Fatalf("NewRemoteProvider failed: %v", err)
	}

	if count.n != 1 {
		t.Errorf("expected exactly one client dialed for one endpoint, got %d", count.n)
	}
	if registry.Len() != 1 {
		t.Errorf("expected one registry entry, got %d", registry.Len())
	}
	_ = a
	_ = b
}

func TestRegistryDistinctEndpointsGetDistinctClients(t *testing.T) {
	count := &dialCount{}
	registry := NewClientRegistry(fakeDial(count))

	if _, err := NewRemoteProvider("f", BackendFlagd, "http://one.internal:8013", registry); err != nil {
		t.Fatalf("NewRemoteProvider failed: %v", err)
	}
	if _, err := NewRemoteProvider("f", BackendFlagd, "http://two.internal:8013", registry); err != nil {
		t.Fatalf("NewRemoteProvider failed: %v", err)
	}

	if count.n != 2 {
		t.Errorf("expected two clients for two endpoints, got %d", count.n)
	}
}

func TestRemoteEvaluateBeforeReadyIsDisabled(t *testing.T) {
	ctx := context.Background()
	count := &dialCount{}
	registry := NewClientRegistry(fakeDial(count))

	p, err := NewRemoteProvider("checkout-v2", BackendFlagd, "http://flags.internal:8013", registry)
	if err != nil {
		t.Fatalf("NewRemoteProvider failed: %v", err)
	}

	ev := count.dials[0]
	ev.setFlag("checkout-v2", true)

	if p.Evaluate(ctx) {
		t.Error("expected false before the client is ready, even for an enabled flag")
	}

	ev.markReady()
	if !p.Evaluate(ctx) {
		t.Error("expected true once the client is ready")
	}
}

func TestRemoteOnReadyFiresOnConnect(t *testing.T) {
	count := &dialCount{}
	registry := NewClientRegistry(fakeDial(count))

	p, err := NewRemoteProvider("checkout-v2", BackendFlagd, "http://flags.internal:8013", registry)
	if err != nil {
		t.Fatalf("NewRemoteProvider failed: %v", err)
	}

	fired := 0
	notify := func() { fired++ }
	cb := ReadyCallback(&notify)
	p.OnReady(cb)

	count.dials[0].markReady()
	if fired != 1 {
		t.Fatalf("expected ready callback fired once, got %d", fired)
	}
}

func TestRemoteOnTeardownRemovesOnlyOwnCallback(t *testing.T) {
	count := &dialCount{}
	registry := NewClientRegistry(fakeDial(count))

	a, err := NewRemoteProvider("feature-a", BackendFlagd, "http://flags.internal:8013", registry)
	if err != nil {
		t.Fatalf("NewRemoteProvider failed: %v", err)
	}
	b, err := NewRemoteProvider("feature-b", BackendFlagd, "http://flags.internal:8013", registry)
	if err != nil {
		t.Fatalf("NewRemoteProvider failed: %v", err)
	}

	notifyA := func() {}
	notifyB := func() {}
	cbA := ReadyCallback(&notifyA)
	cbB := ReadyCallback(&notifyB)
	a.OnReady(cbA)
	b.OnReady(cbB)

	ev := count.dials[0]
	if ev.handlerCount() != 2 {
		t.Fatalf("expected both adapters subscribed on the shared client, got %d", ev.handlerCount())
	}

	a.OnTeardown(cbA)
	if ev.handlerCount() != 1 {
		t.Errorf("expected exactly one subscription left after teardown, got %d", ev.handlerCount())
	}
}

func TestRemoteEmptyOptions(t *testing.T) {
	ctx := context.Background()
	count := &dialCount{}
	registry := NewClientRegistry(fakeDial(count))

	p, err := NewRemoteProvider("checkout-v2", BackendFlagd, "", registry)
	if err != nil {
		t.Fatalf("expected empty options to be accepted, got %v", err)
	}
	if count.n != 0 {
		t.Errorf("expected no client dialed with empty options, got %d", count.n)
	}
	if p.Evaluate(ctx) {
		t.Error("expected false with no client configured")
	}

	// Lifecycle hooks must degrade silently without a client.
	notify := func() { t.Error("ready callback must never fire without a client") }
	cb := ReadyCallback(&notify)
	p.OnReady(cb)
	p.OnTeardown(cb)
}

func TestRemoteMalformedOptions(t *testing.T) {
	registry := NewClientRegistry(fakeDial(&dialCount{}))
	if _, err := NewRemoteProvider("f", BackendFlagd, "not a uri", registry); err == nil {
		t.Error("expected a construction error for a malformed endpoint URI")
	}
}
