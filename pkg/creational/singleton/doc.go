/*
Package singleton provides process-wide single instances with exactly-once
construction.

# Shared Instance

GetInstance returns the one shared Instance. The first call constructs it;
every later call, from any goroutine, returns a handle to the same object:

	a := singleton.GetInstance()
	b := singleton.GetInstance()
	a.SetValue(123)
	fmt.Println(b.Value()) // 123
	fmt.Println(a == b)    // true

Instance is an interface over an unexported type, so code outside this
package can neither build its own instance nor copy the underlying state.
Copying the handle copies a reference.

# Exactly-Once Gate

Lazy wraps a constructor and runs it at most once:

	conn := singleton.NewLazy(func() *Conn { return dial() })
	c := conn.Get() // dials on first use only

# Per-Type Singletons

Of keeps one value per Go type for the life of the process:

	cache := singleton.Of(func() *Cache { return NewCache(1024) })

# Thread Safety

Construction is gated by sync.Once. Reads and writes of the shared value are
serialized by a read-write lock; concurrent writers are ordered by the lock
and the last write wins.
*/
package singleton
