package feature

import (
	"context"
	"time"

	"github.com/kbukum/flagkit/logger"
)

// WithLogging returns a Middleware that logs each Evaluate and Persist
// call with the feature name, provider kind, outcome, and duration.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Provider) Provider {
		return &loggingProvider{inner: inner, log: log}
	}
}

type loggingProvider struct {
	inner Provider
	log   *logger.Logger
}

func (l *loggingProvider) Feature() string          { return l.inner.Feature() }
func (l *loggingProvider) Name() string             { return l.inner.Name() }
func (l *loggingProvider) OnReady(cb ReadyCallback) { l.inner.OnReady(cb) }
func (l *loggingProvider) OnTeardown(cb ReadyCallback) {
	l.inner.OnTeardown(cb)
}

func (l *loggingProvider) Evaluate(ctx context.Context) bool {
	start := time.Now()
	enabled := l.inner.Evaluate(ctx)

	l.log.Debug("flag evaluated", logger.Fields(
		logger.FieldFeature, l.inner.Feature(),
		logger.FieldProvider, l.inner.Name(),
		logger.FieldEnabled, enabled,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return enabled
}

func (l *loggingProvider) Persist(ctx context.Context, enabled bool) error {
	err := l.inner.Persist(ctx, enabled)

	fields := logger.Fields(
		logger.FieldFeature, l.inner.Feature(),
		logger.FieldProvider, l.inner.Name(),
		logger.FieldEnabled, enabled,
	)
	if err != nil {
		fields[logger.FieldError] = err.Error()
		l.log.Error("flag persist failed", fields)
	} else {
		l.log.Debug("flag persisted", fields)
	}
	return err
}
