package entities

// ScanConfig is the typed view of the scan runner's config.env. Defaults
// mirror what the scan runner falls back to when a key is absent.
type ScanConfig struct {
	NetworkCIDR string
	Ports       []int
	MaxThreads  int
	TimeoutSec  float64
	DelaySec    float64
}

// DefaultScanConfig returns the scan runner's documented defaults.
func DefaultScanConfig() *ScanConfig {
	return &ScanConfig{
		NetworkCIDR: "192.168.1.0/24",
		Ports:       []int{22, 80, 443, 3389},
		MaxThreads:  50,
		TimeoutSec:  1.5,
		DelaySec:    0.25,
	}
}

// ConfigFile represents the operator-owned run parameters on disk. The
// orchestrator seeds it once from a template and never mutates it after.
type ConfigFile struct {
	Path   string
	Seeded bool // true when this run copied it from the template
	Scan   *ScanConfig
}
