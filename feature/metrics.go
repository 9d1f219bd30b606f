package feature

import (
	"context"
	"time"

	"github.com/kbukum/flagkit/observability"
)

// WithMetrics returns a Middleware that records evaluation and persist
// metrics using the flagkit observability instruments.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(inner Provider) Provider {
		return &metricsProvider{inner: inner, metrics: metrics}
	}
}

type metricsProvider struct {
	inner   Provider
	metrics *observability.Metrics
}

func (m *metricsProvider) Feature() string             { return m.inner.Feature() }
func (m *metricsProvider) Name() string                { return m.inner.Name() }
func (m *metricsProvider) OnReady(cb ReadyCallback)    { m.inner.OnReady(cb) }
func (m *metricsProvider) OnTeardown(cb ReadyCallback) { m.inner.OnTeardown(cb) }

func (m *metricsProvider) Evaluate(ctx context.Context) bool {
	start := time.Now()
	enabled := m.inner.Evaluate(ctx)
	m.metrics.RecordEvaluation(ctx, m.inner.Name(), m.inner.Feature(), enabled, time.Since(start))
	return enabled
}

func (m *metricsProvider) Persist(ctx context.Context, enabled bool) error {
	err := m.inner.Persist(ctx, enabled)

	status := "ok"
	if err != nil {
		status = "error"
		m.metrics.RecordError(ctx, "persist", m.inner.Name())
	}
	m.metrics.RecordPersist(ctx, m.inner.Name(), m.inner.Feature(), status)
	return err
}
