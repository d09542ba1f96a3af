package gateways

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewReportVerifier_MissingKeyring(t *testing.T) {
	if _, err := NewReportVerifier(filepath.Join(t.TempDir(), "absent.asc")); err == nil {
		t.Error("NewReportVerifier() should fail for a missing keyring")
	}
}

func TestNewReportVerifier_InvalidKeyring(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys.asc")
	if err := os.WriteFile(keyPath, []byte("not a keyring"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewReportVerifier(keyPath); err == nil {
		t.Error("NewReportVerifier() should fail for invalid keyring content")
	}
}
