package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark    = "v1.0.0"
	Pep_Gen      = "v1.0.0"
	Lib_Gen      = "v1.0.0"
	Lib_Overview = "v0.1.0"
)
