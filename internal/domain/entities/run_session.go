// Package entities defines core domain models and data structures.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// RunState identifies where a run currently is in its lifecycle.
type RunState string

// Run lifecycle states, traversed in order on the success path.
const (
	StateStarted      RunState = "STARTED"
	StateProvisioning RunState = "PROVISIONING"
	StateConfiguring  RunState = "CONFIGURING"
	StateScanning     RunState = "SCANNING"
	StateDiscovering  RunState = "DISCOVERING"
	StateFinished     RunState = "FINISHED"
)

// RunOutcome classifies a finished run.
type RunOutcome string

const (
	// OutcomeCompleted means every step succeeded.
	OutcomeCompleted RunOutcome = "completed"
	// OutcomeCompletedWithWarning means the run finished but the scan exited
	// non-zero or produced no discoverable report.
	OutcomeCompletedWithWarning RunOutcome = "completed_with_warning"
	// OutcomeAborted means a fatal error (provisioning, launch, lock, cancel)
	// ended the run before it could complete.
	OutcomeAborted RunOutcome = "aborted"
	// OutcomeTimeout means the scan process was terminated after exceeding
	// the configured deadline.
	OutcomeTimeout RunOutcome = "timeout"
)

// RunSession represents one execution of the orchestrator, from start to
// log closure. It is owned by exactly one invocation and never shared.
type RunSession struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	State      RunState
	Outcome    RunOutcome
	LogPath    string
	ScanExit   int
	ReportPath string
	Failure    string
}

// NewRunSession creates a session in the STARTED state.
func NewRunSession() *RunSession {
	return &RunSession{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		State:     StateStarted,
		ScanExit:  -1,
	}
}

// Transition moves the session to the given state.
func (s *RunSession) Transition(state RunState) {
	s.State = state
}

// Finish marks the session finished with the given outcome.
func (s *RunSession) Finish(outcome RunOutcome) {
	s.State = StateFinished
	s.Outcome = outcome
	s.FinishedAt = time.Now()
}

// Duration returns the wall-clock length of the run, or the elapsed time so
// far when the session has not finished yet.
func (s *RunSession) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
