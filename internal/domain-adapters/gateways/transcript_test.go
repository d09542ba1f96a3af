package gateways

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sentinelsweep/sweeper/internal/domain/interfaces"
)

func TestOpenTranscript_NamesFileAfterStartTimestamp(t *testing.T) {
	logsDir := filepath.Join(t.TempDir(), "logs")
	start := time.Date(2024, 1, 1, 13, 45, 30, 0, time.Local)

	tr, err := OpenTranscript(logsDir, start)
	if err != nil {
		t.Fatalf("OpenTranscript() error: %v", err)
	}
	defer tr.Close()

	want := filepath.Join(logsDir, "scan_log_20240101_134530.txt")
	if tr.Path() != want {
		t.Errorf("Path() = %q, want %q", tr.Path(), want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("Log file missing: %v", err)
	}
}

func TestTranscript_MirrorsLinesToConsoleAndFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "log-*.txt")
	if err != nil {
		t.Fatal(err)
	}
	var console bytes.Buffer
	tr := NewTranscript(&console, file)

	tr.Info("provisioning complete", interfaces.F("venv", "venv"))
	tr.Warn("scan process exited non-zero", interfaces.F("exit", 2))
	if err := tr.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	logged, err := os.ReadFile(file.Name())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"INFO", "provisioning complete venv=venv", "WARN", "exit=2"} {
		if !strings.Contains(string(logged), want) {
			t.Errorf("Log file missing %q, got:\n%s", want, logged)
		}
		if !strings.Contains(console.String(), want) {
			t.Errorf("Console missing %q, got:\n%s", want, console.String())
		}
	}
}

func TestTranscript_WriterTeesChildOutput(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "log-*.txt")
	if err != nil {
		t.Fatal(err)
	}
	var console bytes.Buffer
	tr := NewTranscript(&console, file)

	if _, err := tr.Writer().Write([]byte("scanner stdout line\n")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}

	logged, _ := os.ReadFile(file.Name())
	if !strings.Contains(string(logged), "scanner stdout line") {
		t.Errorf("Child output missing from log file: %q", logged)
	}
	if !strings.Contains(console.String(), "scanner stdout line") {
		t.Errorf("Child output missing from console: %q", console.String())
	}
}

func TestTranscript_CloseIsIdempotentAndSilencesFileWrites(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "log-*.txt")
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTranscript(nil, file)

	if err := tr.Close(); err != nil {
		t.Fatalf("First Close() error: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Second Close() error: %v", err)
	}

	// Logging after close must not panic or resurrect the file handle.
	tr.Info("late message")
}
