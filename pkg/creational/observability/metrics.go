package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScopeName is the instrumentation scope used for meters and tracers.
const ScopeName = "creational"

// MetricsRecorder records provisioning metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordInstanceCreated counts the construction of a shared instance.
	RecordInstanceCreated(ctx context.Context, kind string)

	// RecordValueWrite counts a write to the shared instance.
	RecordValueWrite(ctx context.Context)

	// RecordProduct records one product request with its latency and outcome.
	RecordProduct(ctx context.Context, variant string, duration time.Duration, err error)
}

type otelMetrics struct {
	instances      metric.Int64Counter
	valueWrites    metric.Int64Counter
	products       metric.Int64Counter
	productLatency metric.Float64Histogram
	productErrors  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter(ScopeName)

	instances, err := meter.Int64Counter("creational.singleton.instances",
		metric.WithDescription("Number of shared instances constructed"),
	)
	if err != nil {
		return nil, err
	}

	valueWrites, err := meter.Int64Counter("creational.singleton.writes",
		metric.WithDescription("Number of writes to the shared instance"),
	)
	if err != nil {
		return nil, err
	}

	products, err := meter.Int64Counter("creational.factory.products",
		metric.WithDescription("Number of product requests"),
	)
	if err != nil {
		return nil, err
	}

	productLatency, err := meter.Float64Histogram("creational.factory.latency_ms",
		metric.WithDescription("Product creation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	productErrors, err := meter.Int64Counter("creational.factory.errors",
		metric.WithDescription("Number of failed product requests"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		instances:      instances,
		valueWrites:    valueWrites,
		products:       products,
		productLatency: productLatency,
		productErrors:  productErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global OTel
// meter provider. If instrument creation fails it logs a warning and returns
// NoopMetrics.
//
// Configure the provider before the first call:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordInstanceCreated implements MetricsRecorder.
func (m *otelMetrics) RecordInstanceCreated(ctx context.Context, kind string) {
	m.instances.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordValueWrite implements MetricsRecorder.
func (m *otelMetrics) RecordValueWrite(ctx context.Context) {
	m.valueWrites.Add(ctx, 1)
}

// RecordProduct implements MetricsRecorder.
func (m *otelMetrics) RecordProduct(ctx context.Context, variant string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("variant", variant))

	m.products.Add(ctx, 1, attrs)
	m.productLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if err != nil {
		m.productErrors.Add(ctx, 1, attrs)
	}
}
