// Package inputgen writes random pipeline input: lines of space-delimited integers
// drawn uniformly from a closed range.
package inputgen

import (
	"bufio"
	"errors"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/ygrebnov/errorc"
)

const Namespace = "inputgen"

var ErrInvalidRange = errors.New(Namespace + ": lowest value is greater than highest value")

// Config controls what Generate writes.
type Config struct {
	// Items is the number of lines.
	Items int
	// Numbers is the count of integers per line. Zero writes empty lines.
	Numbers int
	// Lowest and Highest bound the drawn values, both inclusive.
	Lowest  int64
	Highest int64
	// Seed makes the output reproducible: equal configs produce equal output.
	Seed uint64
}

// DefaultConfig returns 10 lines of 500 integers in [0, 10000], seed 0.
func DefaultConfig() Config {
	return Config{Items: 10, Numbers: 500, Lowest: 0, Highest: 10000}
}

// Generate writes cfg.Items lines to w.
func Generate(w io.Writer, cfg Config) error {
	if cfg.Lowest > cfg.Highest {
		return errorc.With(
			ErrInvalidRange,
			errorc.String("range", strconv.FormatInt(cfg.Lowest, 10)+".."+strconv.FormatInt(cfg.Highest, 10)),
		)
	}

	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	// Width of the range minus one; the full int64 range wraps to MaxUint64.
	span := uint64(cfg.Highest) - uint64(cfg.Lowest)

	bw := bufio.NewWriter(w)
	var line []byte
	for range cfg.Items {
		line = line[:0]
		for k := range cfg.Numbers {
			if k > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, draw(r, cfg.Lowest, span), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func draw(r *rand.Rand, lowest int64, span uint64) int64 {
	if span == ^uint64(0) {
		return int64(r.Uint64())
	}
	return lowest + int64(r.Uint64N(span+1))
}
