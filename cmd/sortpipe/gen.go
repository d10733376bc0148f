package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ygrebnov/sortpipe/inputgen"
)

func genCommand() *cli.Command {
	defaults := inputgen.DefaultConfig()
	return &cli.Command{
		Name:  "gen",
		Usage: "write random input lines",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "num-items",
				Aliases: []string{"n"},
				Value:   defaults.Items,
				Usage:   "number of lines",
			},
			&cli.IntFlag{
				Name:    "numbers",
				Aliases: []string{"m"},
				Value:   defaults.Numbers,
				Usage:   "integers per line",
			},
			&cli.Int64Flag{
				Name:    "lower",
				Aliases: []string{"L"},
				Value:   defaults.Lowest,
				Usage:   "lowest value",
			},
			&cli.Int64Flag{
				Name:    "highest",
				Aliases: []string{"H"},
				Value:   defaults.Highest,
				Usage:   "highest value",
			},
			&cli.Int64Flag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "random seed",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file (default: standard output)",
			},
		},
		Action: genAction,
	}
}

func genAction(c *cli.Context) error {
	cfg := inputgen.Config{
		Items:   c.Int("num-items"),
		Numbers: c.Int("numbers"),
		Lowest:  c.Int64("lower"),
		Highest: c.Int64("highest"),
		Seed:    uint64(c.Int64("seed")),
	}
	if cfg.Items < 0 || cfg.Numbers < 0 {
		return cli.Exit("--num-items and --numbers must not be negative", exitUsage)
	}

	w := c.App.Writer
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(err.Error(), exitFailure)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := inputgen.Generate(w, cfg); err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	return nil
}
