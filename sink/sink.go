// Package sink provides the serialized output writer shared by pipeline workers.
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/ygrebnov/sortpipe/sequence"
)

const Namespace = "sink"

var (
	ErrSinkFailed = errors.New(Namespace + ": output write failed")
	ErrClosed     = errors.New(Namespace + ": sink is closed")
)

// Sink appends formatted sequences to a single output stream, one per line.
// Write is safe for concurrent use; each line is written whole while the sink
// lock is held, so lines from different writers never interleave. No order is
// imposed between writers.
type Sink struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer // nil when the sink does not own the underlying writer
	buf    []byte
	err    error // sticky: first write failure
	closed bool

	lines atomic.Int64
}

// New returns a Sink writing to w. Close flushes but does not close w.
func New(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w)}
}

// Create creates or truncates the file at path and returns a Sink that owns it.
func Create(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s := New(f)
	s.closer = f
	return s, nil
}

// Write appends seq as a comma-separated line. An empty sequence produces an empty line.
// After the first failure every call returns an error wrapping ErrSinkFailed.
func (s *Sink) Write(seq []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.err != nil {
		return s.err
	}

	s.buf = sequence.AppendFormat(s.buf[:0], seq)
	s.buf = append(s.buf, '\n')
	if _, err := s.w.Write(s.buf); err != nil {
		s.err = fmt.Errorf("%w: %w", ErrSinkFailed, err)
		return s.err
	}

	s.lines.Add(1)
	return nil
}

// Lines returns the number of lines accepted so far.
func (s *Sink) Lines() int64 { return s.lines.Load() }

// Close flushes buffered lines and closes the owned file. It returns the first
// write, flush or close failure. Close is idempotent.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.err
	}
	s.closed = true

	if s.err == nil {
		if err := s.w.Flush(); err != nil {
			s.err = fmt.Errorf("%w: %w", ErrSinkFailed, err)
		}
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil && s.err == nil {
			s.err = fmt.Errorf("%w: %w", ErrSinkFailed, err)
		}
	}

	return s.err
}
