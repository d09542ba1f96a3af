package gateways

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sentinelsweep/sweeper/internal/domain/entities"
	"github.com/sentinelsweep/sweeper/internal/domain/interfaces"
)

// ScanInvoker launches the external scan-and-report process as a black box
// inside the provisioned environment and reports its exit status verbatim.
type ScanInvoker struct {
	entry  string // scan entry point, relative to root
	logger interfaces.Logger
	output io.Writer
}

// NewScanInvoker creates an invoker for the given entry point. Child
// stdout/stderr stream to output, normally the run transcript.
func NewScanInvoker(entry string, logger interfaces.Logger, output io.Writer) *ScanInvoker {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ScanInvoker{entry: entry, logger: logger, output: output}
}

// InvokeScan runs the scan entry point with the provisioned interpreter,
// cwd set to root, and the environment activated for the child. It waits
// synchronously and returns the child's exit code.
//
// A process that cannot be started at all returns *entities.LaunchError,
// which is fatal. A process that runs and exits non-zero is not an error
// here; the caller decides how to treat the status. When ctx expires or is
// cancelled the child is terminated and the context's error is returned.
func (si *ScanInvoker) InvokeScan(ctx context.Context, root string, env *entities.EnvironmentState) (int, error) {
	//nolint:gosec // G204: interpreter and entry point come from orchestrator settings
	cmd := exec.CommandContext(ctx, env.PythonPath, si.entry)
	cmd.Dir = root
	cmd.Env = activatedEnv(env)
	if si.output != nil {
		cmd.Stdout = si.output
		cmd.Stderr = si.output
	}

	si.logger.Info("invoking scan runner",
		interfaces.F("entry", si.entry), interfaces.F("python", env.PythonPath))

	if err := cmd.Start(); err != nil {
		return -1, &entities.LaunchError{Command: env.PythonPath + " " + si.entry, Err: err}
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Context termination also surfaces as an ExitError; report the
		// deadline or cancellation instead of the kill signal's code.
		if ctx.Err() != nil {
			return -1, ctx.Err()
		}
		return exitErr.ExitCode(), nil
	}
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	return -1, fmt.Errorf("scan process failed: %w", err)
}

// activatedEnv reproduces what "activating" the virtual environment does
// for child processes: VIRTUAL_ENV set and the venv bin dir first on PATH.
func activatedEnv(env *entities.EnvironmentState) []string {
	out := make([]string, 0, len(os.Environ())+2)
	pathSet := false
	for _, kv := range os.Environ() {
		switch {
		case strings.HasPrefix(kv, "VIRTUAL_ENV="):
			continue
		case strings.HasPrefix(kv, "PATH="):
			out = append(out, "PATH="+env.BinDir+string(filepath.ListSeparator)+strings.TrimPrefix(kv, "PATH="))
			pathSet = true
		default:
			out = append(out, kv)
		}
	}
	if !pathSet {
		out = append(out, "PATH="+env.BinDir)
	}
	out = append(out, "VIRTUAL_ENV="+env.VenvPath)
	return out
}
