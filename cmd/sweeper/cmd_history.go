package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sentinelsweep/sweeper/internal/external-adapters/sqlite"
)

func runHistory(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	var (
		root  = fs.String("root", "", "Project root (default: discovered from the executable location)")
		limit = fs.Int("limit", 20, "Maximum number of runs to list")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sweeper history [options]

List recent orchestrator runs, newest first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}
	if *root == "" {
		*root = discoverRoot()
	}

	store, err := sqlite.OpenHistory(*root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Read-only listing
	defer store.Close()

	sessions, err := store.List(ctx, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tOUTCOME\tEXIT\tREPORT\tLOG")
	for _, s := range sessions {
		report := s.ReportPath
		if report == "" {
			report = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			s.Outcome, s.ScanExit, report, s.LogPath)
	}
	_ = w.Flush()
}
