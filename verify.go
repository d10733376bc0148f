package sortpipe

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/sortpipe/sequence"
	"github.com/ygrebnov/sortpipe/sorting"
)

// VerifyReport is the result of comparing a pipeline output against its input.
type VerifyReport struct {
	InputLines  int
	OutputLines int
	// Unexpected lists 1-based output line numbers that match no remaining input line.
	Unexpected []int
	// Unsorted lists 1-based output line numbers that are out of order.
	Unsorted []int
	// Missing counts input lines that no output line matched.
	Missing int
}

// OK reports whether the output holds exactly the sorted input lines.
func (r VerifyReport) OK() bool {
	return len(r.Unexpected) == 0 && len(r.Unsorted) == 0 && r.Missing == 0
}

func (r VerifyReport) String() string {
	if r.OK() {
		return fmt.Sprintf("ok: %d input lines, %d output lines", r.InputLines, r.OutputLines)
	}
	return fmt.Sprintf(
		"mismatch: %d input lines, %d output lines, %d unexpected, %d unsorted, %d missing",
		r.InputLines, r.OutputLines, len(r.Unexpected), len(r.Unsorted), r.Missing,
	)
}

type verifyConfig struct {
	descending bool
	delimiter  byte
}

// VerifyOption configures Verify.
type VerifyOption func(*verifyConfig)

// VerifyDescending expects output lines in non-increasing order.
func VerifyDescending() VerifyOption {
	return func(c *verifyConfig) { c.descending = true }
}

// VerifyDelimiter sets the byte separating integers in input lines. Default: ' '.
func VerifyDelimiter(d byte) VerifyOption {
	return func(c *verifyConfig) { c.delimiter = d }
}

// Verify checks that outputPath holds, in any order, exactly one sorted copy of every
// line of inputPath. Duplicated input lines must appear as many times in the output.
func Verify(ctx context.Context, inputPath, outputPath string, opts ...VerifyOption) (VerifyReport, error) {
	cfg := verifyConfig{delimiter: ' '}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := checkDelimiter(cfg.delimiter); err != nil {
		return VerifyReport{}, err
	}

	var report VerifyReport
	expected := make(map[string]int)
	var seq []int64

	err := scanFile(ctx, inputPath, func(line string) {
		seq = sequence.AppendParse(seq[:0], line, cfg.delimiter)
		slices.Sort(seq)
		if cfg.descending {
			slices.Reverse(seq)
		}
		expected[sequence.Format(seq)]++
		report.InputLines++
	})
	if err != nil {
		return report, err
	}

	err = scanFile(ctx, outputPath, func(line string) {
		report.OutputLines++
		seq = sequence.AppendParse(seq[:0], line, ',')
		if !sorting.IsSorted(seq, cfg.descending) {
			report.Unsorted = append(report.Unsorted, report.OutputLines)
		}
		key := sequence.Format(seq)
		if expected[key] == 0 {
			report.Unexpected = append(report.Unexpected, report.OutputLines)
			return
		}
		expected[key]--
	})
	if err != nil {
		return report, err
	}

	for _, n := range expected {
		report.Missing += n
	}
	return report, nil
}

// scanFile calls fn for every line of path, checking ctx between lines.
func scanFile(ctx context.Context, path string, fn func(line string)) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return scanLines(ctx, f, path, fn)
}

func scanLines(ctx context.Context, r io.Reader, path string, fn func(line string)) error {
	sc := newLineScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", errorc.With(ErrReadInput, errorc.String("path", path)), err)
	}
	return nil
}
