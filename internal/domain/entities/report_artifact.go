package entities

import (
	"path/filepath"
	"strings"
	"time"
)

// ReportArtifact is an opaque file produced by the external scan process.
// The orchestrator reads its existence and timestamp, never its content.
type ReportArtifact struct {
	Path     string
	ModTime  time.Time
	Format   string // inferred from extension: "json", "csv", "html"
	Verified bool   // detached signature checked against the keyring
}

// NewReportArtifact builds an artifact for path, inferring its format.
func NewReportArtifact(path string, modTime time.Time) *ReportArtifact {
	return &ReportArtifact{
		Path:    path,
		ModTime: modTime,
		Format:  strings.TrimPrefix(filepath.Ext(path), "."),
	}
}
