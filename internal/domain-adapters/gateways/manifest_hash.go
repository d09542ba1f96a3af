package gateways

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// manifestHasher decides whether the dependency manifest changed since the
// last install. The provisioner stamps the manifest's SHA-256 next to the
// environment; a matching stamp means installation can be skipped.
type manifestHasher struct{}

// Calculate returns the SHA-256 checksum of a file as lowercase hex.
// Pure Go implementation - no external sha256sum binary needed.
func (h manifestHasher) Calculate(path string) (string, error) {
	//nolint:gosec // G304: path is the configured dependency manifest
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	sum := sha256.New()
	if _, err := io.Copy(sum, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(sum.Sum(nil)), nil
}

// StampMatches reports whether the stamp file records the given checksum.
// A missing or unreadable stamp simply means "no match".
func (h manifestHasher) StampMatches(stampPath, checksum string) bool {
	data, err := os.ReadFile(stampPath)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == checksum
}

// WriteStamp records the checksum of the manifest that was last installed.
func (h manifestHasher) WriteStamp(stampPath, checksum string) error {
	return os.WriteFile(stampPath, []byte(checksum+"\n"), 0600)
}
