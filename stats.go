package sortpipe

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Stats summarizes one pipeline run.
type Stats struct {
	RunID        string
	Algorithm    string
	Descending   bool
	Threads      int
	LinesRead    int64
	LinesWritten int64
	// Failed counts lines skipped after a processing failure.
	Failed   int64
	Duration time.Duration
	// ItemErrors joins the per-item errors, up to an internal limit. Nil when Failed is 0.
	ItemErrors error
}

type statsDocument struct {
	RunID        string   `yaml:"run_id"`
	Algorithm    string   `yaml:"algorithm"`
	Descending   bool     `yaml:"descending"`
	Threads      int      `yaml:"threads"`
	LinesRead    int64    `yaml:"lines_read"`
	LinesWritten int64    `yaml:"lines_written"`
	Failed       int64    `yaml:"failed"`
	Duration     string   `yaml:"duration"`
	Errors       []string `yaml:"errors,omitempty"`
}

// WriteYAML writes the run summary to w as a YAML document.
func (s Stats) WriteYAML(w io.Writer) error {
	doc := statsDocument{
		RunID:        s.RunID,
		Algorithm:    s.Algorithm,
		Descending:   s.Descending,
		Threads:      s.Threads,
		LinesRead:    s.LinesRead,
		LinesWritten: s.LinesWritten,
		Failed:       s.Failed,
		Duration:     s.Duration.String(),
		Errors:       errorStrings(s.ItemErrors),
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func errorStrings(err error) []string {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []string{err.Error()}
	}
	errs := joined.Unwrap()
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, fmt.Sprintf("%+v", e))
	}
	return out
}
