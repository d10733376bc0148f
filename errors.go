package sortpipe

import "errors"

const Namespace = "sortpipe"

var (
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
	ErrOpenInput     = errors.New(Namespace + ": cannot open input")
	ErrCreateOutput  = errors.New(Namespace + ": cannot create output")
	ErrReadInput     = errors.New(Namespace + ": input read failed")
	ErrAlreadyRun    = errors.New(Namespace + ": pipeline has already been run")
	ErrItemPanicked  = errors.New(Namespace + ": item processing panicked")
)
