package singleton

import (
	"sync"
	"sync/atomic"
)

// Lazy holds a value built on first use.
// If the constructor panics the gate still closes and Get returns the zero value afterwards.
type Lazy[T any] struct {
	once  sync.Once
	ctor  func() T
	value T
	done  atomic.Bool
}

// NewLazy returns a gate that will call ctor once, on the first Get.
func NewLazy[T any](ctor func() T) *Lazy[T] {
	return &Lazy[T]{ctor: ctor}
}

// Get returns the value, constructing it on the first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		defer l.done.Store(true)
		ctor := l.ctor
		l.ctor = nil
		l.value = ctor()
	})
	return l.value
}

// Initialized reports whether the constructor has already run.
func (l *Lazy[T]) Initialized() bool {
	return l.done.Load()
}
