// Command sortpipe sorts every line of an integer file on a pool of workers.
//
//	sortpipe -i input.txt -o output.txt -n 8 -S quick --test
//	sortpipe gen -n 1000 -m 500 -s 7 -o input.txt
//	sortpipe verify -i input.txt -o output.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	_, _ = maxprocs.Set()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args))
}

func run(ctx context.Context, args []string) int {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "sortpipe:", err)
		return exitCode(err)
	}
	return 0
}
