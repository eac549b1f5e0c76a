package registry

import (
	"errors"
	"fmt"
	"maps"
	"sync"
)

var (
	// ErrDuplicateKey indicates Register was called for a key that is already present.
	ErrDuplicateKey = errors.New("registry: duplicate key")

	// ErrNotFound indicates a lookup for a key that was never registered.
	ErrNotFound = errors.New("registry: key not found")
)

// Registry is a concurrency-safe map from K to V.
// The zero value is not usable; call New.
type Registry[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// New returns an empty registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		items: make(map[K]V),
	}
}

// Register stores value under key. It fails with ErrDuplicateKey if the key exists.
func (r *Registry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[key]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	r.items[key] = value
	return nil
}

// Replace stores value under key, overwriting any previous value.
// It reports whether a previous value was replaced.
func (r *Registry[K, V]) Replace(key K, value V) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, existed := r.items[key]
	r.items[key] = value
	return existed
}

// Lookup returns the value stored under key.
func (r *Registry[K, V]) Lookup(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	return v, ok
}

// MustLookup is like Lookup but panics when the key is absent.
func (r *Registry[K, V]) MustLookup(key K) V {
	v, ok := r.Lookup(key)
	if !ok {
		panic(fmt.Sprintf("%v: %v", ErrNotFound, key))
	}
	return v
}

// Has reports whether key is present.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[key]
	return ok
}

// Remove deletes key and reports whether it was present.
func (r *Registry[K, V]) Remove(key K) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[key]
	delete(r.items, key)
	return ok
}

// Keys returns the registered keys in unspecified order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]K, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Snapshot returns a copy of the current contents.
func (r *Registry[K, V]) Snapshot() map[K]V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.items)
}

// Range calls fn for every entry of a snapshot until fn returns false.
func (r *Registry[K, V]) Range(fn func(K, V) bool) {
	for k, v := range r.Snapshot() {
		if !fn(k, v) {
			return
		}
	}
}

// GetOrCreate returns the value under key, calling ctor to build it if the
// key is absent. ctor runs at most once per key. The second result reports
// whether this call created the value.
func (r *Registry[K, V]) GetOrCreate(key K, ctor func() V) (V, bool) {
	r.mu.RLock()
	v, ok := r.items[key]
	r.mu.RUnlock()
	if ok {
		return v, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have won the race between the two locks.
	if v, ok := r.items[key]; ok {
		return v, false
	}
	v = ctor()
	r.items[key] = v
	return v, true
}
