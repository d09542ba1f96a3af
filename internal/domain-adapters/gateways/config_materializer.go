package gateways

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sentinelsweep/sweeper/internal/domain/entities"
	"github.com/sentinelsweep/sweeper/internal/domain/interfaces"
	"github.com/sentinelsweep/sweeper/internal/external-adapters/dotenv"
)

// ConfigMaterializer seeds the scan runner's configuration file from a
// template on first run only. An existing file belongs to the operator and
// is never rewritten. Nothing here is ever fatal to the run.
type ConfigMaterializer struct {
	configName   string
	templateName string
	logger       interfaces.Logger
}

// NewConfigMaterializer creates a materializer for the given file names,
// both relative to the project root.
func NewConfigMaterializer(configName, templateName string, logger interfaces.Logger) *ConfigMaterializer {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ConfigMaterializer{
		configName:   configName,
		templateName: templateName,
		logger:       logger,
	}
}

// EnsureConfig makes sure a configuration file exists at root, copying the
// template when it does not. A missing template or failed copy is reported
// as a warning and the run proceeds without a configuration file; the scan
// runner owns defaulting. The returned error is always nil.
func (m *ConfigMaterializer) EnsureConfig(root string) (*entities.ConfigFile, error) {
	configPath := filepath.Join(root, m.configName)
	templatePath := filepath.Join(root, m.templateName)

	cf := &entities.ConfigFile{Path: configPath}

	if _, err := os.Stat(configPath); err == nil {
		m.logger.Info("configuration present, leaving operator edits untouched",
			interfaces.F("path", m.configName))
	} else {
		if _, err := os.Stat(templatePath); os.IsNotExist(err) {
			m.logger.Warn("configuration template missing, proceeding without config",
				interfaces.F("template", m.templateName))
			return nil, nil
		}
		if err := copyFile(templatePath, configPath); err != nil {
			m.logger.Warn("failed to seed configuration from template",
				interfaces.F("error", err))
			return nil, nil
		}
		cf.Seeded = true
		m.logger.Info("seeded configuration from template",
			interfaces.F("path", m.configName), interfaces.F("template", m.templateName))
	}

	scan, err := dotenv.Load(configPath)
	if err != nil {
		m.logger.Warn("configuration unreadable, scan runner will use its defaults",
			interfaces.F("error", err))
		return cf, nil
	}
	cf.Scan = scan
	m.logger.Info("configuration loaded",
		interfaces.F("network", scan.NetworkCIDR),
		interfaces.F("ports", scan.Ports),
		interfaces.F("max_threads", scan.MaxThreads))

	return cf, nil
}

func copyFile(src, dst string) error {
	//nolint:gosec // G304: src is the configured template path
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}
	if err := os.WriteFile(dst, data, 0600); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}
