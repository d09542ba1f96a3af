package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sentinelsweep/sweeper/internal/domain-adapters/gateways"
	orchestrators "github.com/sentinelsweep/sweeper/internal/domain-orchestrators"
	"github.com/sentinelsweep/sweeper/internal/domain/entities"
	"github.com/sentinelsweep/sweeper/internal/domain/interfaces"
	"github.com/sentinelsweep/sweeper/internal/external-adapters/sqlite"
	yamlcfg "github.com/sentinelsweep/sweeper/internal/external-adapters/yaml"
)

func runRun(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	var (
		root    = fs.String("root", "", "Project root (default: discovered from the executable location)")
		timeout = fs.Duration("timeout", -1, "Scan timeout, e.g. 30m; 0 disables, -1 uses sweeper.yml")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sweeper run [options]

Perform one full orchestration cycle: provision the virtual environment,
seed config.env from its template, invoke the scan runner, and discover
the newest report artifact. The full transcript is written to
logs/scan_log_<timestamp>.txt.

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
	if *timeout >= 0 {
		settings.ScanTimeout = *timeout
	}

	os.Exit(executeRun(ctx, *root, settings))
}

// executeRun wires the gateways to the orchestrator and performs one run.
// Returns the process exit code: 0 for completed runs (with or without a
// report or scan warning), 1 for fatal outcomes.
func executeRun(ctx context.Context, root string, settings *entities.Settings) int {
	start := time.Now()
	transcript, err := gateways.OpenTranscript(filepath.Join(root, settings.LogsDir), start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	//nolint:errcheck // The transcript must be released on every exit path
	defer transcript.Close()

	provisioner := gateways.NewProvisioner(gateways.ProvisionerConfig{
		Python:   settings.Python,
		VenvDir:  settings.VenvDir,
		Manifest: settings.Manifest,
		Logger:   transcript,
		Output:   transcript.Writer(),
	})
	materializer := gateways.NewConfigMaterializer(settings.ConfigFile, settings.ConfigTemplate, transcript)
	invoker := gateways.NewScanInvoker(settings.ScanEntry, transcript, transcript.Writer())
	finder := gateways.NewReportFinder()

	var verifier orchestrators.ReportVerifier
	if settings.VerifyReports && settings.Keyring != "" {
		v, err := gateways.NewReportVerifier(filepath.Join(root, settings.Keyring))
		if err != nil {
			transcript.Warn("report verification disabled", interfaces.F("error", err))
		} else {
			verifier = v
		}
	}

	var history orchestrators.HistoryRecorder
	if store, err := sqlite.OpenHistory(root); err != nil {
		transcript.Warn("run history disabled", interfaces.F("error", err))
	} else {
		history = store
		//nolint:errcheck // Advisory store, close failure is uninteresting
		defer store.Close()
	}

	orchestrator := orchestrators.NewRunOrchestrator(
		provisioner,
		materializer,
		invoker,
		finder,
		verifier,
		gateways.NewRunLock(root),
		history,
		transcript,
		orchestrators.RunOrchestratorConfig{
			Root:           root,
			ReportsDir:     filepath.Join(root, settings.ReportsDir),
			ReportPatterns: settings.ReportPatterns,
			ScanTimeout:    settings.ScanTimeout,
			LogPath:        transcript.Path(),
		},
	)

	session, err := orchestrator.ExecuteRun(ctx)
	if err != nil {
		transcript.Fatal("run aborted", interfaces.F("error", err))
		return 1
	}

	if session.Outcome == entities.OutcomeCompletedWithWarning {
		transcript.Warn("run completed with warnings", interfaces.F("log", session.LogPath))
	}
	return 0
}
