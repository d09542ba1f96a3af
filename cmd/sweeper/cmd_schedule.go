package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	yamlcfg "github.com/sentinelsweep/sweeper/internal/external-adapters/yaml"
)

func runSchedule(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	var (
		root  = fs.String("root", "", "Project root (default: discovered from the executable location)")
		every = fs.Duration("every", 0, "Interval between runs, e.g. 1h (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sweeper schedule --every <interval> [options]

Run the full orchestration cycle on a fixed interval until interrupted.
Runs are strictly sequential: a cycle that overruns the interval delays
the next trigger instead of overlapping it. A failed cycle is logged and
scheduling continues.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}
	if *every <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --every is required and must be positive\n\n")
		fs.Usage()
		os.Exit(1)
	}
	if *root == "" {
		*root = discoverRoot()
	}

	for {
		settings, err := yamlcfg.NewSettingsRepository().Load(*root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if code := executeRun(ctx, *root, settings); code != 0 {
			fmt.Fprintf(os.Stderr, "Run failed (exit %d); next attempt in %s\n", code, *every)
		}

		select {
		case <-ctx.Done():
			fmt.Println("Scheduler stopped.")
			return
		case <-time.After(*every):
		}
	}
}
