package sortpipe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/sortpipe/metrics"
	"github.com/ygrebnov/sortpipe/sorting"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Threads != DefaultThreads {
		t.Fatalf("Threads default = %d; want %d", cfg.Threads, DefaultThreads)
	}
	if cfg.Algorithm != sorting.Insertion {
		t.Fatalf("Algorithm default = %v; want insertion", cfg.Algorithm)
	}
	if cfg.Delimiter != ' ' {
		t.Fatalf("Delimiter default = %q; want ' '", cfg.Delimiter)
	}
	if cfg.Descending {
		t.Fatalf("Descending default = true; want false")
	}
	if cfg.Logger == nil || cfg.Metrics == nil {
		t.Fatalf("Logger and Metrics must default to non-nil values")
	}
}

func TestValidateConfig_RequiresPaths(t *testing.T) {
	cfg := defaultConfig()
	require.ErrorIs(t, validateConfig(&cfg), ErrInvalidConfig)

	cfg.InputPath = "in.txt"
	require.ErrorIs(t, validateConfig(&cfg), ErrInvalidConfig)

	cfg.OutputPath = "in.txt"
	require.ErrorIs(t, validateConfig(&cfg), ErrInvalidConfig)

	cfg.OutputPath = "out.txt"
	require.NoError(t, validateConfig(&cfg))
}

func TestValidateConfig_FillsNilLoggerAndMetrics(t *testing.T) {
	cfg := defaultConfig()
	cfg.InputPath, cfg.OutputPath = "in", "out"
	cfg.Logger, cfg.Metrics = nil, nil

	require.NoError(t, validateConfig(&cfg))
	require.NotNil(t, cfg.Logger)
	require.Equal(t, metrics.NoopProvider{}, cfg.Metrics)
}

func TestOptions_Apply(t *testing.T) {
	cfg := defaultConfig()
	opts := []Option{
		WithInput("a"),
		WithOutput("b"),
		WithThreads(MaxThreads),
		WithAlgorithmName(" Merge "),
		WithDescending(),
		WithDelimiter(','),
	}
	for _, opt := range opts {
		require.NoError(t, opt(&cfg))
	}

	require.Equal(t, "a", cfg.InputPath)
	require.Equal(t, "b", cfg.OutputPath)
	require.Equal(t, MaxThreads, cfg.Threads)
	require.Equal(t, sorting.Merge, cfg.Algorithm)
	require.True(t, cfg.Descending)
	require.Equal(t, byte(','), cfg.Delimiter)
}

func TestNew_InvalidOptions_ReturnsError(t *testing.T) {
	t.Parallel()

	p, err := New(WithInput("in"), WithOutput("out"), WithThreads(MaxThreads+1))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Nil(t, p)
}

func TestNew_NilOptionIgnored(t *testing.T) {
	t.Parallel()

	p, err := New(nil, WithInput("in"), WithOutput("out"))
	require.NoError(t, err)
	require.Equal(t, StateCreated, p.State())
}
