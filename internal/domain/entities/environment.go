package entities

// EnvironmentState represents a provisioned runtime: the virtual
// environment plus its installed dependency set.
type EnvironmentState struct {
	Root          string
	VenvPath      string
	PythonPath    string
	BinDir        string
	Created       bool   // true when this run created the venv
	ManifestPath  string // empty when no dependency manifest exists
	ManifestHash  string
	DepsRefreshed bool // true when dependencies were (re)installed this run
}
