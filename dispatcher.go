package sortpipe

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ygrebnov/sortpipe/queue"
)

// maxLineSize is the longest input line accepted.
const maxLineSize = 64 << 20

// dispatcher reads the input line by line and puts every line on the queue.
// It finishes the queue when it returns, whatever the reason.
type dispatcher struct {
	src    io.Reader
	queue  *queue.Queue
	inst   *instruments
	logger *slog.Logger
}

// run returns the number of lines queued. It stops early, without error, when ctx is
// canceled; a read failure is wrapped in ErrReadInput.
func (d *dispatcher) run(ctx context.Context) (int64, error) {
	defer d.queue.Finish()

	sc := newLineScanner(d.src)
	var n int64
	for sc.Scan() {
		if ctx.Err() != nil {
			d.logger.Debug("dispatcher canceled", "lines", n)
			return n, nil
		}
		d.inst.depth.Add(1)
		d.queue.Put(sc.Text())
		d.inst.read.Add(1)
		n++
	}
	if err := sc.Err(); err != nil {
		d.logger.Error("input read failed", "lines", n, "error", err)
		return n, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return n, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	return sc
}
