package probe

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/CodexForgeBR/check-fop/internal/jvm"
)

const (
	launcherErrorPrefix = "Error: "
	uncaughtPrefix      = "Exception in thread "
	causedByPrefix      = "Caused by: "
)

// Classify maps the launcher's exit status and captured stderr onto a failure
// kind and the message to report. status is the launcher's own description of
// the exit ("exit status 1") and is used only when stderr says nothing.
//
// Sources are tried in order: the bootstrap's "main-invoker: <kind>: <msg>"
// line, an uncaught `Exception in thread "main" <type>[: <msg>]`, the
// launcher's own class and main-method lookup errors, a linkage error cause,
// and finally the last stderr line.
func Classify(status string, stderr []byte) (Kind, string) {
	lines := nonEmptyLines(stderr)

	for _, line := range lines {
		if kind, msg, ok := parseInvokerLine(line); ok {
			return kind, msg
		}
	}

	for _, line := range lines {
		if !strings.HasPrefix(line, uncaughtPrefix) {
			continue
		}
		// Skip the quoted thread name.
		rest := line[len(uncaughtPrefix):]
		if end := strings.Index(rest, `" `); strings.HasPrefix(rest, `"`) && end > 0 {
			rest = rest[end+2:]
		}
		typ, msg := splitThrowable(rest)
		if isLinkageError(typ) {
			return TargetNotFound, msg
		}
		return InvocationFailed, msg
	}

	for _, line := range lines {
		msg, ok := strings.CutPrefix(line, launcherErrorPrefix)
		if !ok {
			continue
		}
		// "Main method not found in class X, please define the main method as:"
		if i := strings.Index(msg, ", please define"); i >= 0 {
			msg = msg[:i]
		}
		switch {
		case strings.HasPrefix(msg, "Could not find or load main class"):
			return TargetNotFound, msg
		case strings.HasPrefix(msg, "Main method "):
			return MethodNotFound, msg
		}
	}

	for _, line := range lines {
		if !strings.HasPrefix(line, causedByPrefix) {
			continue
		}
		typ, msg := splitThrowable(strings.TrimPrefix(line, causedByPrefix))
		if isLinkageError(typ) {
			return TargetNotFound, msg
		}
	}

	if len(lines) > 0 {
		return InvocationFailed, lines[len(lines)-1]
	}
	if status == "" {
		status = "java exited with an unknown status"
	}
	return InvocationFailed, status
}

// parseInvokerLine decodes a jvm.InvokerPrefix failure line.
func parseInvokerLine(line string) (Kind, string, bool) {
	rest, ok := strings.CutPrefix(line, jvm.InvokerPrefix)
	if !ok {
		return 0, "", false
	}
	name, msg, found := strings.Cut(rest, ":")
	if !found {
		return 0, "", false
	}
	msg = strings.TrimPrefix(msg, " ")
	for _, kind := range []Kind{TargetNotFound, MethodNotFound, InvocationFailed} {
		if kind.String() == name {
			return kind, msg, true
		}
	}
	return 0, "", false
}

// splitThrowable splits "java.lang.IllegalStateException: msg" into type and
// message. A throwable printed without a message yields an empty message.
func splitThrowable(s string) (typ, msg string) {
	typ, msg, found := strings.Cut(s, ": ")
	if !found {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(typ), msg
}

func isLinkageError(typ string) bool {
	switch typ {
	case "java.lang.ClassNotFoundException", "java.lang.NoClassDefFoundError":
		return true
	default:
		return false
	}
}

func nonEmptyLines(b []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(b))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
