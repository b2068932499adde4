// Package exitcode defines named exit codes for the check-fop probe.
//
// The build orchestrator only distinguishes success from failure, so the
// probe uses exactly two codes.
package exitcode

const (
	Success = 0 // FOP entry point present and invokable
	Failure = 1 // Entry point or main method missing, invocation raised, or CLI misuse
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	default:
		return "unknown"
	}
}
