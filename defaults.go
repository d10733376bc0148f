package sortpipe

import (
	"log/slog"
	"strconv"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/sortpipe/metrics"
	"github.com/ygrebnov/sortpipe/sorting"
)

// defaultConfig centralizes default values for Config.
func defaultConfig() Config {
	return Config{
		Threads:   DefaultThreads,
		Algorithm: sorting.Insertion,
		Delimiter: ' ',
		Logger:    slog.New(slog.DiscardHandler),
		Metrics:   metrics.NoopProvider{},
	}
}

// validateConfig checks the assembled configuration.
func validateConfig(cfg *Config) error {
	switch {
	case cfg.InputPath == "":
		return errorc.With(ErrInvalidConfig, errorc.String("input", "path is required"))
	case cfg.OutputPath == "":
		return errorc.With(ErrInvalidConfig, errorc.String("output", "path is required"))
	case cfg.InputPath == cfg.OutputPath:
		return errorc.With(ErrInvalidConfig, errorc.String("output", "must differ from input"))
	}
	if err := checkThreads(cfg.Threads); err != nil {
		return err
	}
	if err := checkDelimiter(cfg.Delimiter); err != nil {
		return err
	}
	if cfg.Strategy == nil && cfg.Algorithm.Strategy() == nil {
		return errorc.With(ErrInvalidConfig, errorc.String("algorithm", cfg.Algorithm.String()))
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NoopProvider{}
	}
	return nil
}

func checkThreads(n int) error {
	if n <= 0 || n > MaxThreads {
		return errorc.With(
			ErrInvalidConfig,
			errorc.String("threads", strconv.Itoa(n)+" not in 1.."+strconv.Itoa(MaxThreads)),
		)
	}
	return nil
}

func checkDelimiter(d byte) error {
	switch {
	case d == '\n', d == '\r', d == '+', d == '-', d >= '0' && d <= '9':
		return errorc.With(ErrInvalidConfig, errorc.String("delimiter", strconv.QuoteRune(rune(d))))
	}
	return nil
}
