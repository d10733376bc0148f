package sortpipe

import (
	"log/slog"

	"github.com/ygrebnov/sortpipe/metrics"
	"github.com/ygrebnov/sortpipe/sorting"
)

const (
	// MaxThreads caps the worker pool size.
	MaxThreads = 16
	// DefaultThreads is the worker pool size when none is configured.
	DefaultThreads = 4
)

// Config holds a pipeline configuration. Build it with options passed to New.
type Config struct {
	// InputPath is the file to read lines from. Required.
	InputPath string

	// OutputPath is the file sorted lines are written to. It is created or truncated. Required.
	OutputPath string

	// Threads is the number of workers, in 1..MaxThreads.
	// Default: 4.
	Threads int

	// Algorithm selects the sort strategy.
	// Default: sorting.Insertion.
	Algorithm sorting.Algorithm

	// Strategy overrides Algorithm with a caller supplied strategy.
	// Default: nil.
	Strategy sorting.Strategy

	// Descending sorts in non-increasing order.
	// Default: false.
	Descending bool

	// Delimiter separates integers in an input line.
	// Default: ' '.
	Delimiter byte

	// Logger receives pipeline logs.
	// Default: a logger that discards everything.
	Logger *slog.Logger

	// Metrics receives pipeline instruments.
	// Default: metrics.NoopProvider.
	Metrics metrics.Provider
}
