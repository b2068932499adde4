// Package cli provides flag binding and validation for the check-fop CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/check-fop/internal/config"
)

// BindFlags registers the CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	flags.StringVar(&cfg.JavaHome, "java-home", "", "Java installation to run FOP under (default: $JAVA_HOME, then java on PATH)")
	flags.StringVar(&cfg.Classpath, "classpath", "", "Classpath passed to java via -cp (default: inherit $CLASSPATH)")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log probe details to stdout")
}

// ValidateFlags checks flag values after parsing.
func ValidateFlags(cfg *config.Config) error {
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}
	return nil
}

// BuildOverrides returns the config keys for flags explicitly set on the
// command line, so config file values are not overridden by flag defaults.
func BuildOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	stringFlags := map[string]struct {
		key string
		val string
	}{
		"java-home": {"JAVA_HOME", cfg.JavaHome},
		"classpath": {"CLASSPATH", cfg.Classpath},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	if cmd.Flags().Changed("verbose") {
		overrides["VERBOSE"] = fmt.Sprintf("%t", cfg.Verbose)
	}

	return overrides
}
