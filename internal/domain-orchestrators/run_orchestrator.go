// Package orchestrators coordinates the environment-bootstrap and
// scan-run workflow across the gateway adapters.
package orchestrators

import (
	"context"
	"errors"
	"time"

	"github.com/sentinelsweep/sweeper/internal/domain/entities"
	"github.com/sentinelsweep/sweeper/internal/domain/interfaces"
)

// EnvironmentProvisioner interface for establishing the isolated runtime
type EnvironmentProvisioner interface {
	EnsureEnvironment(ctx context.Context, root string) (*entities.EnvironmentState, error)
}

// ConfigMaterializer interface for seeding the scan configuration
type ConfigMaterializer interface {
	EnsureConfig(root string) (*entities.ConfigFile, error)
}

// ScanInvoker interface for launching the external scan process
type ScanInvoker interface {
	InvokeScan(ctx context.Context, root string, env *entities.EnvironmentState) (int, error)
}

// ReportFinder interface for locating report artifacts
type ReportFinder interface {
	FindLatest(reportsDir string, patterns []string) (*entities.ReportArtifact, error)
}

// ReportVerifier interface for optional report signature checks
type ReportVerifier interface {
	VerifyReport(artifact *entities.ReportArtifact) (bool, error)
}

// RunLock interface for run exclusion per project root
type RunLock interface {
	Acquire() error
	Release() error
}

// HistoryRecorder interface for the advisory run-history store
type HistoryRecorder interface {
	Record(ctx context.Context, session *entities.RunSession) error
}

// RunOrchestrator drives one RunSession through its lifecycle:
// STARTED → PROVISIONING → CONFIGURING → SCANNING → DISCOVERING → FINISHED.
// It is single-threaded and strictly sequential; each step completes before
// the next begins. All state travels through explicit parameters; the
// orchestrator never mutates the process working directory or environment.
type RunOrchestrator struct {
	provisioner  EnvironmentProvisioner
	materializer ConfigMaterializer
	invoker      ScanInvoker
	finder       ReportFinder
	verifier     ReportVerifier  // optional
	lock         RunLock         // optional
	history      HistoryRecorder // optional
	logger       interfaces.Logger
	config       RunOrchestratorConfig
}

// RunOrchestratorConfig holds configuration for the orchestrator.
type RunOrchestratorConfig struct {
	Root           string
	ReportsDir     string // resolved path
	ReportPatterns []string
	ScanTimeout    time.Duration // zero disables the deadline
	LogPath        string
}

// NewRunOrchestrator creates a new run orchestrator. Verifier, lock, and
// history may be nil; the corresponding steps are then skipped.
func NewRunOrchestrator(
	provisioner EnvironmentProvisioner,
	materializer ConfigMaterializer,
	invoker ScanInvoker,
	finder ReportFinder,
	verifier ReportVerifier,
	lock RunLock,
	history HistoryRecorder,
	logger interfaces.Logger,
	config RunOrchestratorConfig,
) *RunOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &RunOrchestrator{
		provisioner:  provisioner,
		materializer: materializer,
		invoker:      invoker,
		finder:       finder,
		verifier:     verifier,
		lock:         lock,
		history:      history,
		logger:       logger,
		config:       config,
	}
}

// ExecuteRun performs one complete orchestration cycle and returns the
// finished session. The returned error is non-nil only for fatal outcomes:
// lock contention, ProvisioningError, LaunchError, scan timeout, or
// external cancellation. A non-zero scan exit or a missing report is a
// warning, not an error.
func (o *RunOrchestrator) ExecuteRun(ctx context.Context) (*entities.RunSession, error) {
	session := entities.NewRunSession()
	session.LogPath = o.config.LogPath

	o.logger.Info("run started",
		interfaces.F("session", session.ID), interfaces.F("root", o.config.Root))

	// Step 1: Exclude overlapping runs before touching the environment.
	if o.lock != nil {
		if err := o.lock.Acquire(); err != nil {
			return o.finish(ctx, session, entities.OutcomeAborted, err), err
		}
		defer func() { _ = o.lock.Release() }()
	}

	// Step 2: Provision the runtime environment.
	session.Transition(entities.StateProvisioning)
	env, err := o.provisioner.EnsureEnvironment(ctx, o.config.Root)
	if err != nil {
		return o.finish(ctx, session, entities.OutcomeAborted, err), err
	}

	// Step 3: Seed configuration. Never fatal.
	session.Transition(entities.StateConfiguring)
	if _, err := o.materializer.EnsureConfig(o.config.Root); err != nil {
		o.logger.Warn("configuration step reported a problem", interfaces.F("error", err))
	}

	// Step 4: Invoke the scan runner.
	session.Transition(entities.StateScanning)
	scanCtx := ctx
	if o.config.ScanTimeout > 0 {
		var cancel context.CancelFunc
		scanCtx, cancel = context.WithTimeout(ctx, o.config.ScanTimeout)
		defer cancel()
	}

	exit, err := o.invoker.InvokeScan(scanCtx, o.config.Root, env)
	if err != nil {
		var launchErr *entities.LaunchError
		switch {
		case errors.As(err, &launchErr):
			return o.finish(ctx, session, entities.OutcomeAborted, err), err
		case errors.Is(err, context.DeadlineExceeded):
			o.logger.Error("scan terminated after exceeding deadline",
				interfaces.F("timeout", o.config.ScanTimeout))
			return o.finish(ctx, session, entities.OutcomeTimeout, err), err
		default:
			// External cancellation or an unclassifiable wait failure.
			return o.finish(ctx, session, entities.OutcomeAborted, err), err
		}
	}
	session.ScanExit = exit

	warned := false
	if exit != 0 {
		// A partial report may still have been written.
		o.logger.Warn("scan process exited non-zero", interfaces.F("exit", exit))
		warned = true
	}

	// Step 5: Discover the newest report artifact.
	session.Transition(entities.StateDiscovering)
	artifact, err := o.finder.FindLatest(o.config.ReportsDir, o.config.ReportPatterns)
	if err != nil {
		o.logger.Warn("report discovery failed", interfaces.F("error", err))
		warned = true
	}
	if artifact == nil {
		o.logger.Warn("no report found", interfaces.F("dir", o.config.ReportsDir))
		warned = true
	} else {
		session.ReportPath = artifact.Path
		o.logger.Info("report discovered",
			interfaces.F("path", artifact.Path), interfaces.F("format", artifact.Format))
		o.verifyArtifact(artifact)
	}

	outcome := entities.OutcomeCompleted
	if warned {
		outcome = entities.OutcomeCompletedWithWarning
	}
	return o.finish(ctx, session, outcome, nil), nil
}

func (o *RunOrchestrator) verifyArtifact(artifact *entities.ReportArtifact) {
	if o.verifier == nil {
		return
	}
	signed, err := o.verifier.VerifyReport(artifact)
	switch {
	case !signed:
		o.logger.Info("report carries no detached signature")
	case err != nil:
		o.logger.Warn("report signature check failed", interfaces.F("error", err))
	default:
		o.logger.Info("report signature verified", interfaces.F("path", artifact.Path))
	}
}

func (o *RunOrchestrator) finish(ctx context.Context, session *entities.RunSession, outcome entities.RunOutcome, cause error) *entities.RunSession {
	if cause != nil {
		session.Failure = cause.Error()
	}
	session.Finish(outcome)

	if o.history != nil {
		// Recording must survive a cancelled run context.
		recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := o.history.Record(recordCtx, session); err != nil {
			o.logger.Warn("failed to record run history", interfaces.F("error", err))
		}
	}

	o.logger.Info("run finished",
		interfaces.F("outcome", session.Outcome),
		interfaces.F("duration", session.Duration().Round(time.Millisecond)))
	return session
}
