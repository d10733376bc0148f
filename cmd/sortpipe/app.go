package main

import (
	"errors"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ygrebnov/sortpipe"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "sortpipe",
		Usage:     "sort every line of an integer file on a pool of workers",
		UsageText: "sortpipe [options] -i INPUT -o OUTPUT\nsortpipe gen [options]\nsortpipe verify -i INPUT -o OUTPUT",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input file, one line of integers per item",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file, created or truncated",
			},
			&cli.IntFlag{
				Name:    "num_threads",
				Aliases: []string{"n"},
				Value:   sortpipe.DefaultThreads,
				Usage:   "number of workers (1..16)",
			},
			&cli.StringFlag{
				Name:    "sort-type",
				Aliases: []string{"S"},
				Value:   "insertion",
				Usage:   "sort algorithm: insertion, merge, quick or std",
			},
			&cli.BoolFlag{
				Name:  "descending",
				Usage: "sort lines in non-increasing order",
			},
			&cli.StringFlag{
				Name:  "delimiter",
				Value: " ",
				Usage: "single byte separating integers in input lines",
			},
			&cli.BoolFlag{
				Name:    "test",
				Aliases: []string{"t"},
				Usage:   "check the output against the input after sorting",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML, TOML or JSON file providing flag values; explicit flags win",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write Prometheus metrics in textfile format to this path",
			},
			&cli.StringFlag{
				Name:  "summary",
				Usage: "write a YAML run summary to this path, - for standard output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "debug, info, warn or error",
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			genCommand(),
			verifyCommand(),
		},
		// Exit codes are decided by main, never inside the library.
		ExitErrHandler:  func(*cli.Context, error) {},
		HideHelpCommand: true,
	}
}

func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return exitFailure
}
