package gateways

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManifestHasher_Calculate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(path, []byte("rich\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var h manifestHasher
	sum, err := h.Calculate(path)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}
	if len(sum) != 64 {
		t.Errorf("Calculate() = %q, want 64 hex chars", sum)
	}

	again, err := h.Calculate(path)
	if err != nil {
		t.Fatal(err)
	}
	if sum != again {
		t.Errorf("Calculate() not deterministic: %q vs %q", sum, again)
	}
}

func TestManifestHasher_Calculate_MissingFile(t *testing.T) {
	var h manifestHasher
	if _, err := h.Calculate(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Calculate() on missing file should error")
	}
}

func TestManifestHasher_StampRoundTrip(t *testing.T) {
	stamp := filepath.Join(t.TempDir(), ".deps.sha256")
	var h manifestHasher

	if h.StampMatches(stamp, "abc") {
		t.Error("StampMatches() on missing stamp should be false")
	}
	if err := h.WriteStamp(stamp, "abc"); err != nil {
		t.Fatalf("WriteStamp() error: %v", err)
	}
	if !h.StampMatches(stamp, "abc") {
		t.Error("StampMatches() after WriteStamp should be true")
	}
	if h.StampMatches(stamp, "def") {
		t.Error("StampMatches() with a different checksum should be false")
	}
}
