package singleton

import (
	"reflect"

	"github.com/randalmurphal/creational/pkg/creational/registry"
)

var perType = registry.New[reflect.Type, *Lazy[any]]()

// Of returns the process-wide value of type T, calling ctor to build it the
// first time T is requested. Later calls ignore ctor.
//
// ctor runs outside the registry lock, so it may itself call Of for other types.
// It must not call Of for T.
func Of[T any](ctor func() T) T {
	key := reflect.TypeFor[T]()
	cell, _ := perType.GetOrCreate(key, func() *Lazy[any] {
		return NewLazy(func() any {
			return construct(key.String(), ctor)
		})
	})
	v, _ := cell.Get().(T)
	return v
}

// Created reports whether Of has already built a value of type T.
func Created[T any]() bool {
	cell, ok := perType.Lookup(reflect.TypeFor[T]())
	return ok && cell.Initialized()
}
