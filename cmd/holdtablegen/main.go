// Command holdtablegen builds a holdrank jump table and writes it to
// disk. Grounded on the teacher's twoplustwogen.go generator tool, but
// reworked as a normal compiled command (the teacher's generator is a
// go:build ignore script meant to be run with `go run`) since
// SPEC_FULL.md's generation step is a supported, reusable operation
// rather than a one-off table rebuild.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/evalcore/holdrank"
)

func main() {
	out := flag.String("out", "holdrank.tbl", "output table file path")
	verbose := flag.Bool("v", true, "verbose progress logging")
	flag.Parse()

	if err := run(*out, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(out string, verbose bool) error {
	logf := func(string, ...any) {}
	if verbose {
		logf = func(s string, v ...any) {
			fmt.Fprintf(os.Stdout, s, v...)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	start := time.Now()
	logf("generating table -> %s\n", out)
	if err := holdrank.GenerateAndSave(ctx, out, holdrank.WithLogf(logf)); err != nil {
		return err
	}
	logf("wrote %s in %s\n", out, time.Since(start))
	return nil
}
