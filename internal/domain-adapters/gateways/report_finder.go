package gateways

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sentinelsweep/sweeper/internal/domain/entities"
)

// ReportFinder locates report artifacts produced by the scan process.
// It is strictly read-only.
type ReportFinder struct{}

// NewReportFinder creates a new report finder.
func NewReportFinder() *ReportFinder {
	return &ReportFinder{}
}

// FindLatest returns the most recently modified file in reportsDir matching
// any of the glob patterns. Modification-time ties break by
// lexicographically greatest base name, for determinism. A missing or empty
// directory yields (nil, nil): no report is a normal outcome, not an error.
func (f *ReportFinder) FindLatest(reportsDir string, patterns []string) (*entities.ReportArtifact, error) {
	if _, err := os.Stat(reportsDir); os.IsNotExist(err) {
		return nil, nil
	}

	var latest *entities.ReportArtifact
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(reportsDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			candidate := entities.NewReportArtifact(match, info.ModTime())
			if latest == nil || newer(candidate, latest) {
				latest = candidate
			}
		}
	}

	return latest, nil
}

func newer(a, b *entities.ReportArtifact) bool {
	if !a.ModTime.Equal(b.ModTime) {
		return a.ModTime.After(b.ModTime)
	}
	return filepath.Base(a.Path) > filepath.Base(b.Path)
}
