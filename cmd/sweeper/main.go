// Package main provides the sweeper CLI, the bootstrap and run
// orchestrator for the SentinelSweep scan pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	yamlcfg "github.com/sentinelsweep/sweeper/internal/external-adapters/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// No arguments means a full run: the scheduler invokes us this way.
	if len(os.Args) < 2 {
		runRun(ctx, nil)
		return
	}

	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "run":
		runRun(ctx, os.Args[2:])
	case "init":
		runInit(os.Args[2:])
	case "history":
		runHistory(ctx, os.Args[2:])
	case "report":
		runReport(os.Args[2:])
	case "schedule":
		runSchedule(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sweeper - environment bootstrap and run orchestrator for SentinelSweep

Usage:
  sweeper [command] [options]

Running sweeper with no arguments performs one full scan run.

Commands:
  run       Provision the environment, seed config, run the scan, discover the report
  init      First-time project setup (directories, manifest, config template)
  history   List recent runs from the history store
  report    Print the path of the newest report artifact
  schedule  Repeat runs on a fixed interval until interrupted

Use "sweeper <command> --help" for more information about a command.`)
}

// discoverRoot finds the project root relative to the orchestrator's own
// location, falling back to the working directory when the executable's
// directory carries no project markers.
func discoverRoot() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		for _, marker := range []string{yamlcfg.SettingsFileName, "requirements.txt", "config.env"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
