package feature

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/open-feature/go-sdk/openfeature"
	flagd "github.com/open-feature/go-sdk-contrib/providers/flagd/pkg"

	"github.com/kbukum/flagkit/logger"
)

// Evaluator is what flagkit needs from a remote evaluation client:
// boolean evaluation that never fails outward, plus a removable readiness
// subscription shared by every adapter on the same client.
type Evaluator interface {
	// Name returns the name the client is registered under.
	Name() string
	// BooleanValue returns the flag's value, or defaultValue when the
	// client is not ready, the flag is unknown, or evaluation fails.
	BooleanValue(ctx context.Context, flagName string, defaultValue bool) bool
	// AddReadyHandler subscribes cb to the client's ready event.
	AddReadyHandler(cb ReadyCallback)
	// RemoveReadyHandler unsubscribes a callback added with AddReadyHandler.
	RemoveReadyHandler(cb ReadyCallback)
}

// maxConnectAttempts bounds reconnection of the client's event stream.
const maxConnectAttempts = 3

// processTargetingKey identifies this process in remote evaluation
// contexts. One stable key per process is enough for boolean toggles.
var processTargetingKey = uuid.NewString()

// openFeatureEvaluator adapts an OpenFeature named client to Evaluator.
// Connection establishment runs in the background inside the SDK; until
// the ProviderReady event fires, evaluations return the default.
type openFeatureEvaluator struct {
	name   string
	client *openfeature.Client
	log    *logger.Logger

	mu       sync.Mutex
	handlers map[ReadyCallback]openfeature.EventCallback
}

func newOpenFeatureEvaluator(name string, client *openfeature.Client) *openFeatureEvaluator {
	return &openFeatureEvaluator{
		name:     name,
		client:   client,
		log:      logger.Get("feature.evaluator"),
		handlers: make(map[ReadyCallback]openfeature.EventCallback),
	}
}

func (e *openFeatureEvaluator) Name() string { return e.name }

func (e *openFeatureEvaluator) BooleanValue(ctx context.Context, flagName string, defaultValue bool) bool {
	value, err := e.client.BooleanValue(ctx, flagName, defaultValue,
		openfeature.NewEvaluationContext(processTargetingKey, nil))
	if err != nil {
		// Not ready, unknown flag, or transport failure: the flag reads
		// as the default rather than surfacing an error.
		e.log.Debug("remote evaluation fell back to default", logger.Fields(
			logger.FieldFeature, flagName,
			logger.FieldError, err.Error(),
		))
		return defaultValue
	}
	return value
}

func (e *openFeatureEvaluator) AddReadyHandler(cb ReadyCallback) {
	if cb == nil {
		return
	}
	forward := func(openfeature.EventDetails) { (*cb)() }
	wrapped := openfeature.EventCallback(&forward)

	e.mu.Lock()
	e.handlers[cb] = wrapped
	e.mu.Unlock()

	e.client.AddHandler(openfeature.ProviderReady, wrapped)
}

func (e *openFeatureEvaluator) RemoveReadyHandler(cb ReadyCallback) {
	e.mu.Lock()
	wrapped, ok := e.handlers[cb]
	delete(e.handlers, cb)
	e.mu.Unlock()

	if ok {
		e.client.RemoveHandler(openfeature.ProviderReady, wrapped)
	}
}

// dialFlagd builds a flagd-backed evaluator, registers it with OpenFeature
// under a name derived from the endpoint, and returns the named client.
// The flagd provider retries its event-stream connection a bounded number
// of times; retries are not observable from here.
func dialFlagd(ep Endpoint) (Evaluator, error) {
	opts := []flagd.ProviderOption{
		flagd.WithHost(ep.Host),
		flagd.WithPort(ep.Port),
		flagd.WithEventStreamConnectionMaxAttempts(maxConnectAttempts),
	}
	if ep.TLS {
		opts = append(opts, flagd.WithTLS(""))
	}

	name := "flagkit/" + ep.Addr()
	if err := openfeature.SetNamedProvider(name, flagd.NewProvider(opts...)); err != nil {
		return nil, fmt.Errorf("feature: register flagd client for %s: %w", ep.Addr(), err)
	}
	return newOpenFeatureEvaluator(name, openfeature.NewClient(name)), nil
}
