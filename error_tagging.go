package sortpipe

import (
	"errors"
	"fmt"
)

// previewLen bounds the item excerpt kept in an ItemError.
const previewLen = 32

// ItemError is a failure to process one input line. It carries the worker that
// hit it and a short excerpt of the line for correlation.
type ItemError interface {
	error
	Unwrap() error
	Worker() int
	Preview() string
}

type itemTaggedError struct {
	err     error
	worker  int
	preview string
}

func newItemError(err error, worker int, item string) error {
	if err == nil {
		return nil
	}
	if len(item) > previewLen {
		item = item[:previewLen] + "..."
	}
	return &itemTaggedError{err: err, worker: worker, preview: item}
}

func (e *itemTaggedError) Error() string   { return e.err.Error() }
func (e *itemTaggedError) Unwrap() error   { return e.err }
func (e *itemTaggedError) Worker() int     { return e.worker }
func (e *itemTaggedError) Preview() string { return e.preview }

func (e *itemTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "item(worker=%d,line=%q): %+v", e.worker, e.preview, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractWorker returns the worker that produced err, if err is an ItemError.
func ExtractWorker(err error) (int, bool) {
	var ie ItemError
	if errors.As(err, &ie) {
		return ie.Worker(), true
	}
	return 0, false
}

// ExtractPreview returns the excerpt of the failing line, if err is an ItemError.
func ExtractPreview(err error) (string, bool) {
	var ie ItemError
	if errors.As(err, &ie) {
		return ie.Preview(), true
	}
	return "", false
}
