package gateways

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/sentinelsweep/sweeper/internal/domain/entities"
)

// stateDirName holds orchestrator-owned state under the project root: the
// run-exclusion lock and the run-history database.
const stateDirName = ".sweeper"

// RunLock guarantees at most one active run per project root. The lock is
// a file lock keyed by root, acquired before any provisioning work and
// released on every exit path.
type RunLock struct {
	fl *flock.Flock
}

// NewRunLock creates the lock for the given project root.
func NewRunLock(root string) *RunLock {
	return &RunLock{fl: flock.New(filepath.Join(root, stateDirName, "run.lock"))}
}

// Acquire takes the lock without blocking. A lock held by another process
// returns entities.ErrRunActive so an overlapping scheduled trigger bails
// out instead of racing the active run.
func (l *RunLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.fl.Path()), 0750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	locked, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !locked {
		return entities.ErrRunActive
	}
	return nil
}

// Release drops the lock. Releasing a lock that was never acquired is a
// no-op.
func (l *RunLock) Release() error {
	return l.fl.Unlock()
}
