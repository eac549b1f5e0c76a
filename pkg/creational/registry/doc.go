// Package registry provides a generic, concurrency-safe keyed store.
//
// It backs the factory Catalog (variant -> Creator) and the per-type
// singleton cache. Reads take a shared lock; writes take an exclusive one.
//
// # Registering
//
// Register refuses to overwrite an existing key and returns ErrDuplicateKey.
// Use Replace when overwriting is intended:
//
//	r := registry.New[string, Creator]()
//	if err := r.Register("a", creatorA); err != nil {
//	    return err
//	}
//	r.Replace("a", betterCreatorA)
//
// # Lazy Values
//
// GetOrCreate builds a value the first time a key is requested. The
// constructor runs at most once per key, even when many goroutines race
// on the first lookup:
//
//	conn, created := conns.GetOrCreate("primary", func() *Conn {
//	    return dial("primary")
//	})
//
// # Iteration
//
// Range walks a snapshot, so the callback may Register or Remove freely.
package registry
