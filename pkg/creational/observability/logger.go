// Package observability provides logging, metrics, and tracing hooks for
// singleton construction and product creation.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Every hook has a no-op form, and the log helpers accept a nil logger.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger returns a logger tagged with the component and variant.
//
// Example:
//
//	logger := EnrichLogger(slog.Default(), "factory", "A")
//	logger.Info("producing") // includes component=factory variant=A
func EnrichLogger(logger *slog.Logger, component, variant string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("component", component),
		slog.String("variant", variant),
	)
}

// LogInstanceCreated logs the one-time construction of a shared instance.
func LogInstanceCreated(logger *slog.Logger, kind string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("singleton instance created",
		slog.String("kind", kind),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogValueSet logs a write to the shared instance.
func LogValueSet(logger *slog.Logger, previous, current int) {
	if logger == nil {
		return
	}
	logger.Debug("singleton value set",
		slog.Int("previous", previous),
		slog.Int("value", current),
	)
}

// LogCreatorRegistered logs a creator being added to a catalog.
func LogCreatorRegistered(logger *slog.Logger, variant string) {
	if logger == nil {
		return
	}
	logger.Debug("creator registered",
		slog.String("variant", variant),
	)
}

// LogProductCreated logs a successful product creation.
func LogProductCreated(logger *slog.Logger, variant, productID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("product created",
		slog.String("variant", variant),
		slog.String("product_id", productID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogProductError logs a failed product request.
func LogProductError(logger *slog.Logger, variant string, err error) {
	if logger == nil {
		return
	}
	logger.Error("product creation failed",
		slog.String("variant", variant),
		slog.String("error", err.Error()),
	)
}

// TimedOperation starts a timer. The returned function reports the elapsed
// time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
