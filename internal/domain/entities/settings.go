package entities

import "time"

// Settings holds the orchestrator's own knobs, loaded from an optional
// sweeper.yml at the project root. All relative paths resolve against the
// root. config.env is the canonical scan-config name; the template used to
// seed it carries the ".template" suffix.
type Settings struct {
	Python         string
	VenvDir        string
	Manifest       string
	ConfigFile     string
	ConfigTemplate string
	ScanEntry      string
	ReportsDir     string
	LogsDir        string
	ReportPatterns []string
	ScanTimeout    time.Duration // zero disables the deadline
	VerifyReports  bool
	Keyring        string
}

// DefaultSettings returns the documented defaults used when sweeper.yml is
// absent or leaves a field empty.
func DefaultSettings() *Settings {
	return &Settings{
		Python:         "python3",
		VenvDir:        "venv",
		Manifest:       "requirements.txt",
		ConfigFile:     "config.env",
		ConfigTemplate: "config.env.template",
		ScanEntry:      "src/main.py",
		ReportsDir:     "reports",
		LogsDir:        "logs",
		ReportPatterns: []string{"*.json", "*.csv", "*.html"},
	}
}
