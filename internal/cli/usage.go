package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `check-fop - Apache FOP availability probe

Runs org.apache.fop.cli.Main -version through the Java launcher and reports
whether the FOP command-line entry point is present and invokable. Intended
to be called by a build system; takes no arguments.

USAGE
  check-fop [flags]

FLAGS
  Java Runtime:
    --java-home <path>                     Java installation (default: $JAVA_HOME, then java on PATH)
    --classpath <path>                     Classpath passed via -cp (default: inherit $CLASSPATH)
    --config <path>                        Path to additional config file (default: ./.check-fop.conf if present)

  Output:
    -v, --verbose                          Log probe details to stdout

  Help & Version:
    -h, --help                             Show this help text
    --version                              Show version, commit, build date

OUTPUT
  stdout   whatever FOP prints for -version
  stderr   on failure only, one line: FOP test error: <message>

EXIT CODES
  0   Success              FOP entry point present and invokable
  1   Failure              Class or main method missing, invocation raised, or invalid usage

EXAMPLES
  # Probe using the ambient java and CLASSPATH
  check-fop

  # Probe a specific FOP distribution
  check-fop --classpath '/opt/fop/build/fop.jar:/opt/fop/lib/*'
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
