package sortpipe

import "github.com/ygrebnov/sortpipe/metrics"

// instruments groups the metrics a run records.
type instruments struct {
	read     metrics.Counter
	written  metrics.Counter
	failed   metrics.Counter
	busy     metrics.UpDownCounter
	depth    metrics.UpDownCounter
	duration metrics.Histogram
}

func newInstruments(p metrics.Provider) *instruments {
	return &instruments{
		read: p.Counter(metrics.LinesRead,
			metrics.WithDescription("Input lines put on the queue."), metrics.WithUnit("1")),
		written: p.Counter(metrics.LinesWritten,
			metrics.WithDescription("Sorted lines written to the output."), metrics.WithUnit("1")),
		failed: p.Counter(metrics.ItemsFailed,
			metrics.WithDescription("Lines skipped after a processing failure."), metrics.WithUnit("1")),
		busy: p.UpDownCounter(metrics.WorkersBusy,
			metrics.WithDescription("Workers currently processing a line."), metrics.WithUnit("1")),
		depth: p.UpDownCounter(metrics.QueueDepth,
			metrics.WithDescription("Lines waiting on the queue."), metrics.WithUnit("1")),
		duration: p.Histogram(metrics.ItemDurationSeconds,
			metrics.WithDescription("Time to parse, sort and write one line."), metrics.WithUnit("seconds")),
	}
}
