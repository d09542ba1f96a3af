// Package dotenv reads the scan runner's env-file configuration.
package dotenv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sentinelsweep/sweeper/internal/domain/entities"
)

// Load parses a config.env file into the typed scan configuration. Keys
// that are absent or malformed fall back to the scan runner's documented
// defaults; the orchestrator only surfaces the values, it never enforces
// them. The file itself being unreadable is the only error.
func Load(path string) (*entities.ScanConfig, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := entities.DefaultScanConfig()

	if v, ok := values["NETWORK_CIDR"]; ok && v != "" {
		cfg.NetworkCIDR = v
	}
	if v, ok := values["PORTS"]; ok && v != "" {
		if ports := parsePorts(v); len(ports) > 0 {
			cfg.Ports = ports
		}
	}
	if v, ok := values["MAX_THREADS"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			cfg.MaxThreads = n
		}
	}
	if v, ok := values["TIMEOUT"]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f > 0 {
			cfg.TimeoutSec = f
		}
	}
	if v, ok := values["DELAY"]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f >= 0 {
			cfg.DelaySec = f
		}
	}

	return cfg, nil
}

func parsePorts(v string) []int {
	parts := strings.Split(v, ",")
	ports := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 || n > 65535 {
			continue
		}
		ports = append(ports, n)
	}
	return ports
}
