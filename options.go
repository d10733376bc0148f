package sortpipe

import (
	"fmt"
	"log/slog"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/sortpipe/metrics"
	"github.com/ygrebnov/sortpipe/sorting"
)

// Option configures a pipeline. Use New(opts...) to construct one.
type Option func(*Config) error

// WithInput sets the input file path.
func WithInput(path string) Option {
	return func(cfg *Config) error { cfg.InputPath = path; return nil }
}

// WithOutput sets the output file path.
func WithOutput(path string) Option {
	return func(cfg *Config) error { cfg.OutputPath = path; return nil }
}

// WithThreads sets the number of workers (must be in 1..MaxThreads).
func WithThreads(n int) Option {
	return func(cfg *Config) error {
		if err := checkThreads(n); err != nil {
			return err
		}
		cfg.Threads = n
		return nil
	}
}

// WithAlgorithm selects the sort algorithm.
func WithAlgorithm(a sorting.Algorithm) Option {
	return func(cfg *Config) error {
		if a.Strategy() == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("algorithm", a.String()))
		}
		cfg.Algorithm = a
		return nil
	}
}

// WithAlgorithmName selects the sort algorithm by name; unknown names are rejected.
func WithAlgorithmName(name string) Option {
	return func(cfg *Config) error {
		a, err := sorting.ParseAlgorithm(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cfg.Algorithm = a
		return nil
	}
}

// WithStrategy plugs in a caller supplied sort strategy, overriding the algorithm.
// The strategy must be safe for concurrent use.
func WithStrategy(s sorting.Strategy) Option {
	return func(cfg *Config) error { cfg.Strategy = s; return nil }
}

// WithDescending sorts lines in non-increasing order.
func WithDescending() Option {
	return func(cfg *Config) error { cfg.Descending = true; return nil }
}

// WithDelimiter sets the byte separating integers in input lines.
func WithDelimiter(d byte) Option {
	return func(cfg *Config) error {
		if err := checkDelimiter(d); err != nil {
			return err
		}
		cfg.Delimiter = d
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) error { cfg.Logger = l; return nil }
}

// WithMetrics sets the metrics provider.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *Config) error { cfg.Metrics = p; return nil }
}
