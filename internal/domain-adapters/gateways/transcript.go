// Package gateways provides the on-disk and process adapters used by the
// run orchestrator.
package gateways

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/sentinelsweep/sweeper/internal/domain/interfaces"
)

// Transcript captures the full record of one orchestrator run. Every status
// line goes both to the interactive console (colored) and to a timestamped
// log file (plain). It implements interfaces.Logger so every gateway logs
// through it.
type Transcript struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	path    string
	closed  bool
}

var (
	debugColor = color.New(color.FgHiBlack)
	infoColor  = color.New(color.FgCyan)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	fatalColor = color.New(color.FgRed, color.Bold)
)

// OpenTranscript creates logsDir when needed and opens the run's log file,
// named after the run's start timestamp to avoid collisions across runs.
func OpenTranscript(logsDir string, start time.Time) (*Transcript, error) {
	if err := os.MkdirAll(logsDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	path := filepath.Join(logsDir, fmt.Sprintf("scan_log_%s.txt", start.Format("20060102_150405")))
	//nolint:gosec // G304: path is derived from the configured logs directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Transcript{console: os.Stdout, file: f, path: path}, nil
}

// NewTranscript wires a transcript onto an explicit console writer and an
// already-open log file. Used by tests; OpenTranscript is the normal path.
func NewTranscript(console io.Writer, file *os.File) *Transcript {
	t := &Transcript{console: console, file: file}
	if file != nil {
		t.path = file.Name()
	}
	return t
}

// Path returns the transcript file location.
func (t *Transcript) Path() string { return t.path }

// Writer returns a sink for raw child-process output. Lines stream to both
// the console and the log file without level decoration.
func (t *Transcript) Writer() io.Writer {
	return transcriptWriter{t}
}

// Close flushes and releases the log file. Safe to call more than once;
// the orchestrator defers it so every exit path releases the transcript.
func (t *Transcript) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.file == nil {
		return nil
	}
	t.closed = true
	if err := t.file.Sync(); err != nil {
		_ = t.file.Close()
		return err
	}
	return t.file.Close()
}

// Debug logs a debug-level status line.
func (t *Transcript) Debug(msg string, fields ...interfaces.Field) {
	t.log(debugColor, "DEBUG", msg, fields)
}

// Info logs an informational status line.
func (t *Transcript) Info(msg string, fields ...interfaces.Field) {
	t.log(infoColor, "INFO", msg, fields)
}

// Warn logs a warning status line.
func (t *Transcript) Warn(msg string, fields ...interfaces.Field) {
	t.log(warnColor, "WARN", msg, fields)
}

// Error logs an error status line.
func (t *Transcript) Error(msg string, fields ...interfaces.Field) {
	t.log(errorColor, "ERROR", msg, fields)
}

// Fatal logs a fatal error in a distinguishing style. The caller remains
// responsible for terminating the run.
func (t *Transcript) Fatal(msg string, fields ...interfaces.Field) {
	t.log(fatalColor, "FATAL", msg, fields)
}

func (t *Transcript) log(c *color.Color, level, msg string, fields []interfaces.Field) {
	line := formatLine(level, msg, fields)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.console != nil {
		_, _ = c.Fprintln(t.console, line)
	}
	if t.file != nil && !t.closed {
		_, _ = fmt.Fprintln(t.file, line)
	}
}

func formatLine(level, msg string, fields []interfaces.Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %-5s %s", time.Now().Format("15:04:05"), level, msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}

type transcriptWriter struct {
	t *Transcript
}

func (w transcriptWriter) Write(p []byte) (int, error) {
	w.t.mu.Lock()
	defer w.t.mu.Unlock()

	if w.t.console != nil {
		_, _ = w.t.console.Write(p)
	}
	if w.t.file != nil && !w.t.closed {
		_, _ = w.t.file.Write(p)
	}
	return len(p), nil
}
