// Package pool provides object pools used to recycle per-item scratch memory.
package pool

// Pool is an interface that defines methods on a pool of reusable objects.
type Pool[T any] interface {
	// Get returns an object from the pool, creating one if allowed.
	Get() T

	// Put returns an object back to the pool.
	Put(T)
}
