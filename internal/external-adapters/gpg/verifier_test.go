package gpg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVerifier_LoadKeyringFile_NonexistentFile(t *testing.T) {
	v := NewVerifier()

	err := v.LoadKeyringFile(filepath.Join(t.TempDir(), "absent.asc"))
	if err == nil {
		t.Fatal("Expected error for nonexistent keyring, got nil")
	}
	if !strings.Contains(err.Error(), "failed to open keyring") {
		t.Errorf("Expected 'failed to open keyring' error, got: %v", err)
	}
}

func TestVerifier_LoadKeyringFile_NotAKeyring(t *testing.T) {
	v := NewVerifier()
	keyPath := filepath.Join(t.TempDir(), "garbage.asc")
	if err := os.WriteFile(keyPath, []byte("not a gpg key"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := v.LoadKeyringFile(keyPath); err == nil {
		t.Fatal("Expected error for invalid keyring content, got nil")
	}
}

func TestVerifier_LoadKeyringFile_TruncatedArmor(t *testing.T) {
	v := NewVerifier()
	keyPath := filepath.Join(t.TempDir(), "truncated.asc")
	keyContent := `-----BEGIN PGP PUBLIC KEY BLOCK-----

mQENBGPexAMBCAC1kLz...
-----END PGP PUBLIC KEY BLOCK-----`
	if err := os.WriteFile(keyPath, []byte(keyContent), 0600); err != nil {
		t.Fatal(err)
	}

	if err := v.LoadKeyringFile(keyPath); err == nil {
		t.Fatal("Expected error for truncated key material, got nil")
	}
}

func TestVerifier_VerifyDetached_NoKeysLoaded(t *testing.T) {
	v := NewVerifier()
	dir := t.TempDir()
	report := filepath.Join(dir, "out.json")
	sig := filepath.Join(dir, "out.json.asc")
	for _, p := range []string{report, sig} {
		if err := os.WriteFile(p, []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	err := v.VerifyDetached(report, sig)
	if err == nil {
		t.Fatal("Expected error when verifying with an empty keyring, got nil")
	}
	if !strings.Contains(err.Error(), "no keys loaded") {
		t.Errorf("Expected 'no keys loaded' error, got: %v", err)
	}
}
