package gateways

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/sentinelsweep/sweeper/internal/domain/entities"
	"github.com/sentinelsweep/sweeper/internal/domain/interfaces"
)

const depsStampName = ".deps.sha256"

// Provisioner ensures an isolated runtime environment exists under the
// project root and that its dependency set matches the manifest. Repeated
// invocations with an unchanged manifest leave the environment untouched.
type Provisioner struct {
	python   string
	venvDir  string
	manifest string
	hasher   manifestHasher
	logger   interfaces.Logger
	output   io.Writer
}

// ProvisionerConfig holds configuration for the provisioner. Relative
// paths resolve against the project root at provisioning time.
type ProvisionerConfig struct {
	Python   string // interpreter used to create the venv
	VenvDir  string
	Manifest string
	Logger   interfaces.Logger
	Output   io.Writer // sink for child-process output, typically the transcript
}

// NewProvisioner creates a provisioner for the given configuration.
func NewProvisioner(cfg ProvisionerConfig) *Provisioner {
	logger := cfg.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &Provisioner{
		python:   cfg.Python,
		venvDir:  cfg.VenvDir,
		manifest: cfg.Manifest,
		logger:   logger,
		output:   cfg.Output,
	}
}

// EnsureEnvironment provisions the runtime under root. An environment that
// already exists and is healthy is success, not an edge case. Creation or
// installation failures return *entities.ProvisioningError, which aborts
// the run.
func (p *Provisioner) EnsureEnvironment(ctx context.Context, root string) (*entities.EnvironmentState, error) {
	venvPath := filepath.Join(root, p.venvDir)
	binDir := filepath.Join(venvPath, venvBinDir())
	pythonPath := filepath.Join(binDir, venvPythonName())

	state := &entities.EnvironmentState{
		Root:       root,
		VenvPath:   venvPath,
		PythonPath: pythonPath,
		BinDir:     binDir,
	}

	if _, err := os.Stat(pythonPath); os.IsNotExist(err) {
		p.logger.Info("creating virtual environment", interfaces.F("path", venvPath))
		if err := p.runChild(ctx, root, p.python, "-m", "venv", p.venvDir); err != nil {
			return nil, &entities.ProvisioningError{Step: "create", Err: err}
		}
		state.Created = true
	} else {
		p.logger.Info("virtual environment already provisioned", interfaces.F("path", venvPath))
	}

	manifestPath := filepath.Join(root, p.manifest)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		p.logger.Info("no dependency manifest found, skipping install", interfaces.F("path", manifestPath))
		return state, nil
	}
	state.ManifestPath = manifestPath

	checksum, err := p.hasher.Calculate(manifestPath)
	if err != nil {
		return nil, &entities.ProvisioningError{Step: "install", Err: err}
	}
	state.ManifestHash = checksum

	stampPath := filepath.Join(venvPath, depsStampName)
	if p.hasher.StampMatches(stampPath, checksum) {
		p.logger.Info("dependencies up to date", interfaces.F("manifest", p.manifest))
		return state, nil
	}

	p.logger.Info("installing dependencies", interfaces.F("manifest", p.manifest))
	if err := p.runChild(ctx, root, pythonPath, "-m", "pip", "install", "-r", p.manifest); err != nil {
		return nil, &entities.ProvisioningError{Step: "install", Err: err}
	}
	state.DepsRefreshed = true

	if err := p.hasher.WriteStamp(stampPath, checksum); err != nil {
		// The install itself succeeded; a bad stamp only costs a reinstall
		// on the next run.
		p.logger.Warn("failed to record manifest stamp", interfaces.F("error", err))
	}

	return state, nil
}

func (p *Provisioner) runChild(ctx context.Context, root, bin string, args ...string) error {
	//nolint:gosec // G204: binary and args come from orchestrator settings
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = root
	if p.output != nil {
		cmd.Stdout = p.output
		cmd.Stderr = p.output
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", bin, args, err)
	}
	return nil
}

func venvBinDir() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}
	return "bin"
}

func venvPythonName() string {
	if runtime.GOOS == "windows" {
		return "python.exe"
	}
	return "python"
}
