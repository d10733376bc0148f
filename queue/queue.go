// Package queue provides a blocking FIFO of work items that can be marked as finished.
//
// Consumers call Get, which suspends while the queue is empty and not yet finished.
// Producers call Put. Once no more items will be produced, the producer calls Finish:
// every suspended consumer is woken, pending items are still handed out, and once the
// queue drains Get reports that there is no more work.
package queue

import "sync"

// Queue is a thread-safe FIFO of strings with a one-way finished flag.
// Use New to construct it; the zero value has no condition variable.
type Queue struct {
	mu   sync.Mutex
	cond *sync.Cond

	items []string
	head  int // index of the oldest pending item in items

	finished bool
}

// New returns an empty, unfinished queue.
func New() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Put appends item to the back of the queue and wakes one suspended consumer.
// It never blocks on capacity. An item put after Finish is accepted but may never
// be taken, since consumers stop at the first Get that finds the queue drained.
func (q *Queue) Put(item string) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.cond.Signal()
}

// Get removes and returns the oldest item.
//
// If the queue is empty and not finished, the caller is suspended until an item
// is put or the queue is finished. The boolean is false only when the queue is
// finished and empty, meaning no more items will ever be returned.
func (q *Queue) Get() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if q.head < len(q.items) {
			return q.pop(), true
		}
		if q.finished {
			return "", false
		}
		// Woken by Put, Finish, or spuriously; the loop re-checks both conditions.
		q.cond.Wait()
	}
}

// pop must be called with mu held and at least one pending item.
func (q *Queue) pop() string {
	item := q.items[q.head]
	q.items[q.head] = ""
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head > cap(q.items)/2:
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item
}

// Finish marks the queue as finished and wakes every suspended consumer.
// Items already in the queue are still delivered. Finish is idempotent.
func (q *Queue) Finish() {
	q.mu.Lock()
	q.finished = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// IsFinished reports whether the queue has been finished and fully drained.
// It is meant for inspection; Get is the authority on termination.
func (q *Queue) IsFinished() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.finished && q.head == len(q.items)
}

// Len returns the number of pending items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
