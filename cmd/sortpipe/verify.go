package main

import (
	"github.com/urfave/cli/v2"

	"github.com/ygrebnov/sortpipe"
)

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "check that an output file holds every input line, sorted",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "input file given to the pipeline",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
				Usage:    "output file produced by the pipeline",
			},
			&cli.BoolFlag{
				Name:  "descending",
				Usage: "expect non-increasing lines",
			},
			&cli.StringFlag{
				Name:  "delimiter",
				Value: " ",
				Usage: "single byte separating integers in input lines",
			},
		},
		Action: func(c *cli.Context) error {
			delim, err := parseDelimiter(c.String("delimiter"))
			if err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}
			opts := []sortpipe.VerifyOption{sortpipe.VerifyDelimiter(delim)}
			if c.Bool("descending") {
				opts = append(opts, sortpipe.VerifyDescending())
			}
			return verifyAndReport(c, c.String("input"), c.String("output"), opts...)
		},
	}
}
