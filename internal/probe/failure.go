package probe

import "fmt"

// Kind identifies why the probe failed. Callers outside the process never
// see it: every kind is reported with the same line and exit code.
type Kind int

const (
	TargetNotFound   Kind = iota // entry-point class (or the launcher itself) could not be located
	MethodNotFound               // class found, main(String[]) missing or not static
	InvocationFailed             // main raised or the JVM exited non-zero
)

func (k Kind) String() string {
	switch k {
	case TargetNotFound:
		return "target-not-found"
	case MethodNotFound:
		return "method-not-found"
	case InvocationFailed:
		return "invocation-failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Failure is the single error type returned by Probe.Run.
type Failure struct {
	Kind    Kind
	Message string // may be empty
	Err     error  // underlying launcher error, if any
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}
