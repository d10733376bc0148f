package sortpipe

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_Order(t *testing.T) {
	var steps []string
	record := func(s string) func() error {
		return func() error { steps = append(steps, s); return nil }
	}

	lc := newLifecycleCoordinator(
		func() { steps = append(steps, "finish") },
		record("wait"),
		record("closeSink"),
		record("closeInput"),
	)

	require.NoError(t, lc.Close())
	require.Equal(t, []string{"finish", "wait", "closeSink", "closeInput"}, steps)
}

func TestLifecycle_ReturnsFirstError(t *testing.T) {
	errWait := errors.New("wait")
	errSink := errors.New("sink")
	var inputClosed bool

	lc := newLifecycleCoordinator(
		nil,
		func() error { return errWait },
		func() error { return errSink },
		func() error { inputClosed = true; return nil },
	)

	require.ErrorIs(t, lc.Close(), errWait)
	require.True(t, inputClosed, "every step runs even after a failure")
}

func TestLifecycle_ConcurrentCloseRunsOnce(t *testing.T) {
	var mu sync.Mutex
	counts := map[string]int{}
	inc := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		counts[s]++
	}
	errSink := errors.New("sink")

	lc := newLifecycleCoordinator(
		func() { inc("finish") },
		func() error { inc("wait"); return nil },
		func() error { inc("closeSink"); return errSink },
		func() error { inc("closeInput"); return nil },
	)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.ErrorIs(t, lc.Close(), errSink)
		}()
	}
	wg.Wait()

	require.Equal(t, map[string]int{"finish": 1, "wait": 1, "closeSink": 1, "closeInput": 1}, counts)
}
