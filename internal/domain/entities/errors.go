package entities

import "fmt"

// ProvisioningError is fatal: environment creation or dependency
// installation failed, and the run must abort before invoking the scan.
type ProvisioningError struct {
	Step string // "create" or "install"
	Err  error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning failed during %s: %v", e.Step, e.Err)
}

func (e *ProvisioningError) Unwrap() error { return e.Err }

// LaunchError is fatal: the scan process could not be started at all. A
// scan that starts and exits non-zero is a warning, not a LaunchError.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch scan process %q: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ErrRunActive is returned when the run-exclusion lock is already held by
// another orchestrator process.
var ErrRunActive = fmt.Errorf("another run is already active for this root")
