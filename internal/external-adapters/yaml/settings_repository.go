// Package yaml provides YAML-based loading of the orchestrator settings.
package yaml

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sentinelsweep/sweeper/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// SettingsFileName is the orchestrator's own configuration file, distinct
// from the scan runner's config.env.
const SettingsFileName = "sweeper.yml"

// yamlSettings represents the raw YAML structure
type yamlSettings struct {
	Python         string   `yaml:"python"`
	VenvDir        string   `yaml:"venv_dir"`
	Manifest       string   `yaml:"manifest"`
	ConfigFile     string   `yaml:"config_file"`
	ConfigTemplate string   `yaml:"config_template"`
	ScanEntry      string   `yaml:"scan_entry"`
	ReportsDir     string   `yaml:"reports_dir"`
	LogsDir        string   `yaml:"logs_dir"`
	ReportPatterns []string `yaml:"report_patterns"`
	ScanTimeout    string   `yaml:"scan_timeout"`
	VerifyReports  bool     `yaml:"verify_reports"`
	Keyring        string   `yaml:"keyring"`
}

// SettingsRepository loads orchestrator settings from the project root.
type SettingsRepository struct{}

// NewSettingsRepository creates a new YAML-based settings repository.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Load reads sweeper.yml under root. A missing file is not an error: the
// documented defaults apply. Fields left empty in the file also fall back
// to their defaults.
func (r *SettingsRepository) Load(root string) (*entities.Settings, error) {
	settings := entities.DefaultSettings()

	filePath := filepath.Join(root, SettingsFileName)
	//nolint:gosec // G304: filePath is the settings file under the project root
	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", filePath, err)
	}

	var raw yamlSettings
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", filePath, err)
	}

	applyString(&settings.Python, raw.Python)
	applyString(&settings.VenvDir, raw.VenvDir)
	applyString(&settings.Manifest, raw.Manifest)
	applyString(&settings.ConfigFile, raw.ConfigFile)
	applyString(&settings.ConfigTemplate, raw.ConfigTemplate)
	applyString(&settings.ScanEntry, raw.ScanEntry)
	applyString(&settings.ReportsDir, raw.ReportsDir)
	applyString(&settings.LogsDir, raw.LogsDir)
	applyString(&settings.Keyring, raw.Keyring)
	settings.VerifyReports = raw.VerifyReports
	if len(raw.ReportPatterns) > 0 {
		settings.ReportPatterns = raw.ReportPatterns
	}
	if raw.ScanTimeout != "" {
		d, err := time.ParseDuration(raw.ScanTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid scan_timeout %q: %w", raw.ScanTimeout, err)
		}
		settings.ScanTimeout = d
	}

	return settings, nil
}

func applyString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
