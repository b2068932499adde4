// Package config defines the check-fop configuration model and default values.
//
// Configuration only selects the Java runtime the probe runs under. The probed
// class and its arguments are fixed and cannot be configured.
//
// Sources are merged with a strict precedence chain: built-in defaults <
// project config file < explicit config file < CLI flag overrides.
package config

// ProjectFile is the project-local config file looked up in the working
// directory. A missing project file is not an error.
const ProjectFile = ".check-fop.conf"

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [3]string{
	"JAVA_HOME",
	"CLASSPATH",
	"VERBOSE",
}

// Config holds every configuration field for the check-fop probe.
type Config struct {
	// Java runtime selection. Empty values inherit the process environment.
	JavaHome  string
	Classpath string

	// Runtime flags.
	Verbose bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{}
}
