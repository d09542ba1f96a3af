package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sentinelsweep/sweeper/internal/domain-adapters/gateways"
	yamlcfg "github.com/sentinelsweep/sweeper/internal/external-adapters/yaml"
)

func runReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	root := fs.String("root", "", "Project root (default: discovered from the executable location)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sweeper report [options]

Print the path of the newest report artifact. Exits 1 when no report
exists yet.

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

	settings, err := yamlcfg.NewSettingsRepository().Load(*root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	artifact, err := gateways.NewReportFinder().FindLatest(
		filepath.Join(*root, settings.ReportsDir), settings.ReportPatterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if artifact == nil {
		fmt.Fprintln(os.Stderr, "No report found.")
		os.Exit(1)
	}

	fmt.Println(artifact.Path)
}
