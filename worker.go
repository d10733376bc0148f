package sortpipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/sortpipe/pool"
	"github.com/ygrebnov/sortpipe/queue"
	"github.com/ygrebnov/sortpipe/sequence"
	"github.com/ygrebnov/sortpipe/sink"
	"github.com/ygrebnov/sortpipe/sorting"
)

// maxItemErrors bounds the per-item errors retained in Stats. Failures beyond it are
// still counted.
const maxItemErrors = 100

type worker struct {
	id       int
	queue    *queue.Queue
	sink     *sink.Sink
	strategy sorting.Strategy
	delim    byte
	buffers  pool.Pool[*[]int64]
	inst     *instruments
	failures *itemErrors
	logger   *slog.Logger
}

// run takes lines off the queue until it is finished and drained, or until ctx is
// canceled. Only a sink failure is returned; per-item failures are recorded and skipped.
func (w *worker) run(ctx context.Context) error {
	w.logger.Debug("worker started")
	defer w.logger.Debug("worker stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}
		item, ok := w.queue.Get()
		if !ok {
			return nil
		}
		if err := w.process(item); err != nil {
			return err
		}
	}
}

func (w *worker) process(item string) error {
	w.inst.depth.Add(-1)
	w.inst.busy.Add(1)
	defer w.inst.busy.Add(-1)

	start := time.Now()
	buf := w.buffers.Get()
	defer w.buffers.Put(buf)

	seq, err := w.sortLine(item, *buf)
	if err != nil {
		err = newItemError(err, w.id, item)
		w.failures.add(err)
		w.inst.failed.Add(1)
		w.logger.Warn("line skipped", "error", fmt.Sprintf("%+v", err))
		return nil
	}
	if cap(seq) > cap(*buf) {
		*buf = seq[:0]
	}

	if err = w.sink.Write(seq); err != nil {
		w.logger.Error("output write failed", "error", err)
		return err
	}
	w.inst.written.Add(1)
	w.inst.duration.Record(time.Since(start).Seconds())
	return nil
}

// sortLine parses item into buf and sorts it, turning a panic into ErrItemPanicked.
func (w *worker) sortLine(item string, buf []int64) (seq []int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorc.With(ErrItemPanicked, errorc.String("panic", fmt.Sprint(r)))
		}
	}()
	seq = sequence.AppendParse(buf[:0], item, w.delim)
	return w.strategy.Sort(seq), nil
}

// itemErrors collects per-item failures from every worker.
type itemErrors struct {
	mu    sync.Mutex
	count int64
	errs  []error
}

func (e *itemErrors) add(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count++
	if len(e.errs) < maxItemErrors {
		e.errs = append(e.errs, err)
	}
}

func (e *itemErrors) result() (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.count, errors.Join(e.errs...)
}
