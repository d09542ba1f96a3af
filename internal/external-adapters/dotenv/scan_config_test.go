package dotenv

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.env")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `NETWORK_CIDR=10.1.0.0/16
PORTS=22, 443, 8080
MAX_THREADS=16
TIMEOUT=2.5
DELAY=0.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.NetworkCIDR != "10.1.0.0/16" {
		t.Errorf("NetworkCIDR = %q", cfg.NetworkCIDR)
	}
	if !reflect.DeepEqual(cfg.Ports, []int{22, 443, 8080}) {
		t.Errorf("Ports = %v, want [22 443 8080]", cfg.Ports)
	}
	if cfg.MaxThreads != 16 {
		t.Errorf("MaxThreads = %d, want 16", cfg.MaxThreads)
	}
	if cfg.TimeoutSec != 2.5 {
		t.Errorf("TimeoutSec = %v, want 2.5", cfg.TimeoutSec)
	}
	if cfg.DelaySec != 0.5 {
		t.Errorf("DelaySec = %v, want 0.5", cfg.DelaySec)
	}
}

func TestLoad_MalformedValuesFallBackToDefaults(t *testing.T) {
	path := writeConfig(t, `PORTS=not,numbers
MAX_THREADS=-3
TIMEOUT=soon
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !reflect.DeepEqual(cfg.Ports, []int{22, 80, 443, 3389}) {
		t.Errorf("Ports = %v, want scan runner defaults", cfg.Ports)
	}
	if cfg.MaxThreads != 50 {
		t.Errorf("MaxThreads = %d, want default 50", cfg.MaxThreads)
	}
	if cfg.TimeoutSec != 1.5 {
		t.Errorf("TimeoutSec = %v, want default 1.5", cfg.TimeoutSec)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Error("Load() on a missing file should error")
	}
}
