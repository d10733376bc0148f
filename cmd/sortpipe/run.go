package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/ygrebnov/sortpipe"
	"github.com/ygrebnov/sortpipe/metrics/prometheus"
)

func runAction(c *cli.Context) error {
	s, err := loadRunSettings(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	if c.NArg() > 0 {
		return cli.Exit(fmt.Sprintf("unexpected argument %q", c.Args().First()), exitUsage)
	}
	if s.Input == "" || s.Output == "" {
		return cli.Exit("both --input and --output are required", exitUsage)
	}

	level, err := parseLevel(s.LogLevel)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	delim, err := parseDelimiter(s.Delimiter)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	opts := []sortpipe.Option{
		sortpipe.WithInput(s.Input),
		sortpipe.WithOutput(s.Output),
		sortpipe.WithThreads(s.Threads),
		sortpipe.WithAlgorithmName(s.SortType),
		sortpipe.WithDelimiter(delim),
		sortpipe.WithLogger(logger),
	}
	if s.Descending {
		opts = append(opts, sortpipe.WithDescending())
	}

	var reg *prom.Registry
	if s.MetricsFile != "" {
		reg = prom.NewRegistry()
		opts = append(opts, sortpipe.WithMetrics(prometheus.NewProvider(reg, prometheus.Options{})))
	}

	p, err := sortpipe.New(opts...)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	stats, runErr := p.Run(c.Context)

	if reg != nil {
		if err := prometheus.WriteTextfile(s.MetricsFile, reg); err != nil {
			logger.Error("cannot write metrics", "path", s.MetricsFile, "error", err)
		}
	}
	if s.Summary != "" {
		if err := writeSummary(c.App.Writer, s.Summary, stats); err != nil {
			logger.Error("cannot write summary", "path", s.Summary, "error", err)
		}
	}
	if runErr != nil {
		return cli.Exit(runErr.Error(), exitFailure)
	}

	if s.Test {
		var vopts []sortpipe.VerifyOption
		if s.Descending {
			vopts = append(vopts, sortpipe.VerifyDescending())
		}
		vopts = append(vopts, sortpipe.VerifyDelimiter(delim))
		return verifyAndReport(c, s.Input, s.Output, vopts...)
	}
	return nil
}

func writeSummary(stdout io.Writer, path string, stats sortpipe.Stats) error {
	if path == "-" {
		return stats.WriteYAML(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = stats.WriteYAML(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// verifyAndReport prints the outcome of Verify and fails when the output is wrong.
func verifyAndReport(c *cli.Context, input, output string, opts ...sortpipe.VerifyOption) error {
	w := c.App.Writer
	fmt.Fprintln(w, "Testing correctness")

	report, err := sortpipe.Verify(c.Context, input, output, opts...)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	for _, line := range report.Unexpected {
		fmt.Fprintf(w, "Detected problem with line %d of output\n", line)
	}
	for _, line := range report.Unsorted {
		fmt.Fprintf(w, "Line %d of output is not sorted\n", line)
	}
	if report.Missing > 0 {
		fmt.Fprintf(w, "%d lines were not processed\n", report.Missing)
	}
	if !report.OK() {
		return cli.Exit(report.String(), exitFailure)
	}
	fmt.Fprintln(w, "Everything is ok!")
	return nil
}
