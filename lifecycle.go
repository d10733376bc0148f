package sortpipe

import (
	"sync"
)

// lifecycleCoordinator encapsulates the shutdown sequence of a run.
// It doesn't own the resources; it orders the finish, the waits and the closes.
//
// Close() is safe for concurrent calls; the sequence executes exactly once.
type lifecycleCoordinator struct {
	finish     func()
	wait       func() error
	closeSink  func() error
	closeInput func() error

	once sync.Once
	err  error
}

func newLifecycleCoordinator(
	finish func(),
	wait func() error,
	closeSink func() error,
	closeInput func() error,
) *lifecycleCoordinator {
	return &lifecycleCoordinator{
		finish:     finish,
		wait:       wait,
		closeSink:  closeSink,
		closeInput: closeInput,
	}
}

// Close executes the shutdown sequence exactly once:
// 1) finish the queue so no worker stays suspended
// 2) wait for every worker to return
// 3) flush and close the sink
// 4) close the input
//
// It returns the first error in that order; later calls return the same error.
func (lc *lifecycleCoordinator) Close() error {
	lc.once.Do(func() {
		if lc.finish != nil {
			lc.finish()
		}
		if lc.wait != nil {
			lc.keep(lc.wait())
		}
		if lc.closeSink != nil {
			lc.keep(lc.closeSink())
		}
		if lc.closeInput != nil {
			lc.keep(lc.closeInput())
		}
	})
	return lc.err
}

func (lc *lifecycleCoordinator) keep(err error) {
	if lc.err == nil {
		lc.err = err
	}
}
