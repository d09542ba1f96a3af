package gateways

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sentinelsweep/sweeper/internal/domain/interfaces"
)

const templateContent = `NETWORK_CIDR=10.0.0.0/24
PORTS=80,443
MAX_THREADS=10
TIMEOUT=2.5
DELAY=0.1
`

func TestConfigMaterializer_SeedsFromTemplate(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "config.env.template"), []byte(templateContent), 0600); err != nil {
		t.Fatal(err)
	}

	m := NewConfigMaterializer("config.env", "config.env.template", &interfaces.NoOpLogger{})
	cf, err := m.EnsureConfig(root)
	if err != nil {
		t.Fatalf("EnsureConfig() error: %v", err)
	}
	if cf == nil || !cf.Seeded {
		t.Fatalf("EnsureConfig() = %+v, want seeded config", cf)
	}

	data, err := os.ReadFile(filepath.Join(root, "config.env"))
	if err != nil {
		t.Fatalf("Seeded config unreadable: %v", err)
	}
	if string(data) != templateContent {
		t.Errorf("Seeded config = %q, want template content", data)
	}
	if cf.Scan == nil || cf.Scan.NetworkCIDR != "10.0.0.0/24" {
		t.Errorf("Parsed scan config = %+v, want network 10.0.0.0/24", cf.Scan)
	}
}

func TestConfigMaterializer_NeverOverwritesExistingConfig(t *testing.T) {
	root := t.TempDir()
	existing := []byte("NETWORK_CIDR=172.16.0.0/16\n# operator notes\n")
	if err := os.WriteFile(filepath.Join(root, "config.env"), existing, 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "config.env.template"), []byte(templateContent), 0600); err != nil {
		t.Fatal(err)
	}

	m := NewConfigMaterializer("config.env", "config.env.template", &interfaces.NoOpLogger{})
	cf, err := m.EnsureConfig(root)
	if err != nil {
		t.Fatalf("EnsureConfig() error: %v", err)
	}
	if cf.Seeded {
		t.Error("EnsureConfig() reported seeding over an existing config")
	}

	after, err := os.ReadFile(filepath.Join(root, "config.env"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(existing, after) {
		t.Errorf("Existing config mutated: before %q, after %q", existing, after)
	}
}

func TestConfigMaterializer_MissingTemplateIsNonFatal(t *testing.T) {
	m := NewConfigMaterializer("config.env", "config.env.template", &interfaces.NoOpLogger{})
	cf, err := m.EnsureConfig(t.TempDir())
	if err != nil {
		t.Fatalf("EnsureConfig() error: %v, want nil", err)
	}
	if cf != nil {
		t.Errorf("EnsureConfig() = %+v, want nil config when template missing", cf)
	}
}
