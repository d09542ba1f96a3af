package yaml

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSettingsRepository_MissingFileUsesDefaults(t *testing.T) {
	settings, err := NewSettingsRepository().Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if settings.Python != "python3" {
		t.Errorf("Python = %q, want python3", settings.Python)
	}
	if settings.ConfigFile != "config.env" {
		t.Errorf("ConfigFile = %q, want config.env", settings.ConfigFile)
	}
	if settings.ConfigTemplate != "config.env.template" {
		t.Errorf("ConfigTemplate = %q, want config.env.template", settings.ConfigTemplate)
	}
	if settings.ScanTimeout != 0 {
		t.Errorf("ScanTimeout = %v, want 0 (disabled)", settings.ScanTimeout)
	}
	if len(settings.ReportPatterns) != 3 {
		t.Errorf("ReportPatterns = %v, want json/csv/html globs", settings.ReportPatterns)
	}
}

func TestSettingsRepository_OverridesAndDefaultsMix(t *testing.T) {
	root := t.TempDir()
	content := `python: /usr/bin/python3.12
venv_dir: .venv
scan_timeout: 45m
report_patterns: ["*.json"]
verify_reports: true
keyring: keys/reports.asc
`
	if err := os.WriteFile(filepath.Join(root, SettingsFileName), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	settings, err := NewSettingsRepository().Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if settings.Python != "/usr/bin/python3.12" {
		t.Errorf("Python = %q", settings.Python)
	}
	if settings.VenvDir != ".venv" {
		t.Errorf("VenvDir = %q, want .venv", settings.VenvDir)
	}
	if settings.ScanTimeout != 45*time.Minute {
		t.Errorf("ScanTimeout = %v, want 45m", settings.ScanTimeout)
	}
	if len(settings.ReportPatterns) != 1 || settings.ReportPatterns[0] != "*.json" {
		t.Errorf("ReportPatterns = %v, want [*.json]", settings.ReportPatterns)
	}
	if !settings.VerifyReports || settings.Keyring != "keys/reports.asc" {
		t.Errorf("Verification settings not applied: %+v", settings)
	}
	// Unset fields keep their defaults.
	if settings.Manifest != "requirements.txt" {
		t.Errorf("Manifest = %q, want default", settings.Manifest)
	}
}

func TestSettingsRepository_InvalidTimeout(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, SettingsFileName),
		[]byte("scan_timeout: soonish\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewSettingsRepository().Load(root); err == nil {
		t.Error("Load() should reject an unparsable scan_timeout")
	}
}

func TestSettingsRepository_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, SettingsFileName),
		[]byte(":\n\t- broken"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewSettingsRepository().Load(root); err == nil {
		t.Error("Load() should reject malformed YAML")
	}
}
