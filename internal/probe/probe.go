// Package probe checks that the Apache FOP command-line entry point can be
// resolved and invoked in the current Java environment.
//
// The check resolves org.apache.fop.cli.Main by name and calls its public
// static main(String[]) with the single argument -version, using a reflective
// bootstrap run by the Java launcher. It either succeeds silently or fails with one
// diagnostic line; the three failure causes (class missing, main method
// missing, invocation raised) are deliberately reported the same way.
package probe

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/CodexForgeBR/check-fop/internal/jvm"
	"github.com/CodexForgeBR/check-fop/internal/logging"
)

const (
	// TargetClass is the FOP command-line entry point.
	TargetClass = "org.apache.fop.cli.Main"
	// VersionArg is the only argument passed to the entry point.
	VersionArg = "-version"
	// ErrorPrefix starts the single stderr line written on failure.
	ErrorPrefix = "FOP test error: "
)

// Runner calls a class's public static main(String[]). *jvm.Launcher
// implements it.
type Runner interface {
	RunMain(ctx context.Context, stdout io.Writer, class string, args ...string) (*jvm.Result, error)
}

// Probe performs a single availability check.
type Probe struct {
	Runner Runner
}

// New returns a Probe backed by the given launcher.
func New(l *jvm.Launcher) *Probe {
	return &Probe{Runner: l}
}

// Run invokes TargetClass with VersionArg once. The target's stdout is
// passed through to stdout. It returns nil on success and a *Failure
// otherwise.
func (p *Probe) Run(ctx context.Context, stdout io.Writer) error {
	logging.Debugf("probing %s %s", TargetClass, VersionArg)

	res, err := p.Runner.RunMain(ctx, stdout, TargetClass, VersionArg)
	if err != nil {
		logging.Debugf("launcher unavailable: %v", err)
		return &Failure{Kind: TargetNotFound, Message: err.Error(), Err: err}
	}

	logging.Debugf("launcher %s finished with exit code %d", res.JavaPath, res.ExitCode)
	if res.ExitCode == 0 {
		if len(res.Stderr) > 0 {
			logging.Debugf("discarded launcher stderr: %s", strings.TrimSpace(string(res.Stderr)))
		}
		return nil
	}

	kind, msg := Classify(res.Status, res.Stderr)
	logging.Debugf("failure classified as %s", kind)
	return &Failure{Kind: kind, Message: msg}
}

// Report writes the single failure line for err to w.
func Report(w io.Writer, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	// Keep the report to exactly one line.
	if strings.ContainsAny(msg, "\r\n") {
		msg = strings.Join(strings.Fields(msg), " ")
	}
	fmt.Fprintln(w, ErrorPrefix+msg)
}
