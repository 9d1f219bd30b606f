package feature

import (
	"context"

	"github.com/kbukum/flagkit/observability"
)

// WithTracing returns a Middleware that creates an OpenTelemetry span
// around each Evaluate call. The span name is "{serviceName}.flag.evaluate".
func WithTracing(serviceName string) Middleware {
	return func(inner Provider) Provider {
		return &tracingProvider{inner: inner, serviceName: serviceName}
	}
}

type tracingProvider struct {
	inner       Provider
	serviceName string
}

func (t *tracingProvider) Feature() string             { return t.inner.Feature() }
func (t *tracingProvider) Name() string                { return t.inner.Name() }
func (t *tracingProvider) OnReady(cb ReadyCallback)    { t.inner.OnReady(cb) }
func (t *tracingProvider) OnTeardown(cb ReadyCallback) { t.inner.OnTeardown(cb) }

func (t *tracingProvider) Evaluate(ctx context.Context) bool {
	ctx, span := observability.StartSpan(ctx, t.serviceName+".flag.evaluate")
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrServiceName, t.serviceName)
	observability.SetSpanAttribute(ctx, observability.AttrFeature, t.inner.Feature())
	observability.SetSpanAttribute(ctx, observability.AttrProvider, t.inner.Name())

	enabled := t.inner.Evaluate(ctx)
	observability.SetSpanAttribute(ctx, observability.AttrEnabled, enabled)
	return enabled
}

func (t *tracingProvider) Persist(ctx context.Context, enabled bool) error {
	ctx, span := observability.StartSpan(ctx, t.serviceName+".flag.persist")
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrFeature, t.inner.Feature())
	observability.SetSpanAttribute(ctx, observability.AttrProvider, t.inner.Name())

	err := t.inner.Persist(ctx, enabled)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return err
}
