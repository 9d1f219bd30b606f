package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/flagkit/logger"
	"github.com/kbukum/flagkit/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.Version,
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for flag evaluation.
type Metrics struct {
	evaluationTotal    metric.Int64Counter
	evaluationDuration metric.Float64Histogram
	persistTotal       metric.Int64Counter
	errorTotal         metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	evaluationTotal, err := meter.Int64Counter("flag.evaluation.total",
		metric.WithDescription("Total number of flag evaluations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating flag.evaluation.total counter: %w", err)
	}

	evaluationDuration, err := meter.Float64Histogram("flag.evaluation.duration",
		metric.WithDescription("Duration of flag evaluations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating flag.evaluation.duration histogram: %w", err)
	}

	persistTotal, err := meter.Int64Counter("flag.persist.total",
		metric.WithDescription("Total number of flag persist calls"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating flag.persist.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("flag.error.total",
		metric.WithDescription("Total flag errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating flag.error.total counter: %w", err)
	}

	return &Metrics{
		evaluationTotal:    evaluationTotal,
		evaluationDuration: evaluationDuration,
		persistTotal:       persistTotal,
		errorTotal:         errorTotal,
	}, nil
}

// RecordEvaluation records one flag evaluation.
func (m *Metrics) RecordEvaluation(ctx context.Context, provider, feature string, enabled bool, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("feature", feature),
		attribute.Bool("enabled", enabled),
	)
	m.evaluationTotal.Add(ctx, 1, attrs)
	m.evaluationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("feature", feature),
	))
}

// RecordPersist records one flag persist call.
func (m *Metrics) RecordPersist(ctx context.Context, provider, feature, status string) {
	m.persistTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("feature", feature),
		attribute.String("status", status),
	))
}

// RecordError records an error by type and component.
func (m *Metrics) RecordError(ctx context.Context, errType, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
