package pool

import "sync/atomic"

type fixed[T any] struct {
	available chan T
	created   atomic.Int64
	capacity  int64
	newFn     func() T
}

// NewFixed returns a pool that creates at most capacity objects.
// When every object is checked out, Get blocks until one is Put back.
// A zero capacity pool blocks on every Get.
func NewFixed[T any](capacity uint, newFn func() T) Pool[T] {
	return &fixed[T]{
		available: make(chan T, capacity),
		capacity:  int64(capacity),
		newFn:     newFn,
	}
}

func (p *fixed[T]) Get() T {
	select {
	case el := <-p.available:
		return el

	default:
		if p.created.Add(1) <= p.capacity {
			return p.newFn()
		}
		p.created.Add(-1)

		return <-p.available
	}
}

func (p *fixed[T]) Put(el T) {
	p.available <- el
}
