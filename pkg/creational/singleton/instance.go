package singleton

import (
	"context"
	"log/slog"
	"sync"

	"github.com/randalmurphal/creational/pkg/creational/observability"
)

// Instance is the process-wide shared value.
// Obtain it with GetInstance; there is no other way to construct one.
type Instance interface {
	// SetValue replaces the shared value. All holders observe the write.
	SetValue(v int)

	// Value returns the current shared value.
	Value() int
}

// instance must not be copied after first use; the mutex makes go vet enforce that.
type instance struct {
	mu    sync.RWMutex
	value int

	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

const instanceKind = "singleton.Instance"

var shared = NewLazy(func() *instance {
	return construct(instanceKind, newInstance)
})

func newInstance() *instance {
	return &instance{
		logger:  slog.Default(),
		metrics: observability.NewMetricsRecorder(),
	}
}

// GetInstance returns the shared Instance, constructing it on first call.
func GetInstance() Instance {
	return shared.Get()
}

func (i *instance) SetValue(v int) {
	i.mu.Lock()
	previous := i.value
	i.value = v
	i.mu.Unlock()

	observability.LogValueSet(i.logger, previous, v)
	i.metrics.RecordValueWrite(context.Background())
}

func (i *instance) Value() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.value
}

// construct runs ctor and reports the construction.
func construct[T any](kind string, ctor func() T) T {
	done := observability.TimedOperation()
	v := ctor()
	observability.LogInstanceCreated(slog.Default(), kind, done())
	observability.NewMetricsRecorder().RecordInstanceCreated(context.Background(), kind)
	return v
}
