package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

const defaultManifest = `rich
python-dotenv
`

const defaultConfigTemplate = `# SentinelSweep scan parameters. Edit freely; the orchestrator never
# rewrites this file once it exists.
NETWORK_CIDR=192.168.1.0/24
PORTS=22,80,443,3389
MAX_THREADS=50
TIMEOUT=1.5
DELAY=0.25
`

const defaultScanEntry = `print('SentinelSweep ready')
`

const defaultSettingsFile = `# sweeper orchestrator settings. Remove or leave fields empty to use the
# documented defaults.
#
# python: python3
# venv_dir: venv
# manifest: requirements.txt
# config_file: config.env
# config_template: config.env.template
# scan_entry: src/main.py
# reports_dir: reports
# logs_dir: logs
# report_patterns: ["*.json", "*.csv", "*.html"]
# scan_timeout: 0s
# verify_reports: false
# keyring: ""
`

func runInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	root := fs.String("root", "", "Project root (default: discovered from the executable location)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sweeper init [options]

First-time project setup: creates the reports/ and logs/ directories and
seeds the dependency manifest, configuration template, config.env, scan
entry placeholder, and sweeper.yml. Existing files are never touched.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}
	if *root == "" {
		*root = discoverRoot()
	}

	for _, dir := range []string{"reports", "logs", "src"} {
		if err := os.MkdirAll(filepath.Join(*root, dir), 0750); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	seeds := []struct {
		path    string
		content string
	}{
		{"requirements.txt", defaultManifest},
		{"config.env.template", defaultConfigTemplate},
		{"config.env", defaultConfigTemplate},
		{filepath.Join("src", "main.py"), defaultScanEntry},
		{"sweeper.yml", defaultSettingsFile},
	}

	for _, seed := range seeds {
		path := filepath.Join(*root, seed.path)
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  kept    %s\n", seed.path)
			continue
		}
		if err := os.WriteFile(path, []byte(seed.content), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  created %s\n", seed.path)
	}

	fmt.Printf("\nProject initialized at %s. Run 'sweeper' to perform a scan cycle.\n", *root)
}
