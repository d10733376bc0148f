package sortpipe

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ygrebnov/errorc"
	"golang.org/x/sync/errgroup"

	"github.com/ygrebnov/sortpipe/pool"
	"github.com/ygrebnov/sortpipe/queue"
	"github.com/ygrebnov/sortpipe/sink"
	"github.com/ygrebnov/sortpipe/sorting"
)

// State is the lifecycle stage of a Pipeline.
type State int32

const (
	// StateCreated is a pipeline that has not been run.
	StateCreated State = iota
	// StateRunning is a pipeline whose dispatcher is still reading input.
	StateRunning
	// StateDraining is a pipeline whose input is exhausted; workers drain the queue.
	StateDraining
	// StateDone is a pipeline whose run has returned.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Pipeline sorts every line of one input file into one output file.
// A Pipeline runs once; its methods are safe for concurrent use.
type Pipeline struct {
	//go:nocopy
	nc noCopy

	config   *Config
	strategy sorting.Strategy
	state    atomic.Int32
}

// noCopy is a vet-recognized marker to discourage copying types with this field embedded.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates a pipeline from functional options.
// Configuration errors are returned before any file is touched.
func New(opts ...Option) (*Pipeline, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	strategy := cfg.Strategy
	switch {
	case strategy == nil:
		s, err := sorting.New(cfg.Algorithm, cfg.Descending)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		strategy = s
	case cfg.Descending:
		strategy = sorting.Reverse(strategy)
	}

	return &Pipeline{config: &cfg, strategy: strategy}, nil
}

// Run is a convenience wrapper building a pipeline from opts and running it.
func Run(ctx context.Context, opts ...Option) (Stats, error) {
	p, err := New(opts...)
	if err != nil {
		return Stats{}, err
	}
	return p.Run(ctx)
}

// State returns the current lifecycle stage.
func (p *Pipeline) State() State { return State(p.state.Load()) }

// Run executes the pipeline and blocks until every queued line has been handled.
//
// It returns ErrAlreadyRun when called more than once. Per-item failures do not
// fail the run; they are reported in Stats. An output failure, a read failure or
// the cancellation of ctx is returned along with the partial Stats.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	if !p.state.CompareAndSwap(int32(StateCreated), int32(StateRunning)) {
		return Stats{}, ErrAlreadyRun
	}
	defer p.state.Store(int32(StateDone))

	start := time.Now()
	stats := Stats{
		RunID:      uuid.NewString(),
		Algorithm:  p.algorithmName(),
		Descending: p.config.Descending,
		Threads:    p.config.Threads,
	}
	logger := p.config.Logger.With("run_id", stats.RunID)

	in, err := openInput(p.config.InputPath)
	if err != nil {
		logger.Error("cannot open input", "path", p.config.InputPath, "error", err)
		return stats, err
	}

	out, err := sink.Create(p.config.OutputPath)
	if err != nil {
		_ = in.Close()
		logger.Error("cannot create output", "path", p.config.OutputPath, "error", err)
		return stats, fmt.Errorf(
			"%w: %w", errorc.With(ErrCreateOutput, errorc.String("path", p.config.OutputPath)), err,
		)
	}

	q := queue.New()
	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, q.Finish)
	defer stop()

	lc := newLifecycleCoordinator(q.Finish, g.Wait, out.Close, in.Close)
	defer func() { _ = lc.Close() }()

	inst := newInstruments(p.config.Metrics)
	buffers := pool.NewFixed(uint(p.config.Threads), func() *[]int64 {
		b := make([]int64, 0, 64)
		return &b
	})
	failures := &itemErrors{}

	for i := range p.config.Threads {
		w := &worker{
			id:       i + 1,
			queue:    q,
			sink:     out,
			strategy: p.strategy,
			delim:    p.config.Delimiter,
			buffers:  buffers,
			inst:     inst,
			failures: failures,
			logger:   logger.With("worker", i+1),
		}
		g.Go(func() error { return w.run(gctx) })
	}
	logger.Debug("pipeline running",
		"input", p.config.InputPath,
		"output", p.config.OutputPath,
		"threads", p.config.Threads,
		"algorithm", stats.Algorithm,
	)

	d := &dispatcher{src: in, queue: q, inst: inst, logger: logger}
	read, readErr := d.run(gctx)
	p.state.Store(int32(StateDraining))
	logger.Debug("input exhausted, draining", "lines", read)

	err = lc.Close()

	stats.LinesRead = read
	stats.LinesWritten = out.Lines()
	stats.Failed, stats.ItemErrors = failures.result()
	stats.Duration = time.Since(start)

	// Output failures win over cancellation, which wins over a read failure.
	if err == nil && ctx.Err() != nil {
		err = fmt.Errorf("run %s: %w", stats.RunID, ctx.Err())
	}
	if err == nil {
		err = readErr
	}
	if err != nil {
		logger.Error("pipeline failed", "error", err, "lines_written", stats.LinesWritten)
		return stats, err
	}

	logger.Info("pipeline done",
		"lines_read", stats.LinesRead,
		"lines_written", stats.LinesWritten,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)
	return stats, nil
}

func (p *Pipeline) algorithmName() string {
	if p.config.Strategy != nil {
		return "custom"
	}
	return p.config.Algorithm.String()
}

// openInput opens path for reading. A directory is rejected here so that no output
// file is created for an input that cannot be read.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err == nil {
		var info os.FileInfo
		if info, err = f.Stat(); err == nil && info.IsDir() {
			err = fmt.Errorf("%s is a directory", path)
		}
		if err != nil {
			_ = f.Close()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorc.With(ErrOpenInput, errorc.String("path", path)), err)
	}
	return f, nil
}
