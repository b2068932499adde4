// Package logging provides colored, leveled log output for the check-fop probe.
//
// Info, Warn and Debug write to the info writer (stdout by default); Debug
// only when verbose mode is enabled via SetVerbose(true). Error writes to the
// error writer (stderr by default).
//
// The probe's single failure line is not a log line and is written by
// probe.Report, never through this package.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	verbose bool
	infoOut io.Writer = os.Stdout
	errOut  io.Writer = os.Stderr
)

// Color printers for each log level.
var (
	infoPrefix  = color.New(color.FgBlue).SprintFunc()
	warnPrefix  = color.New(color.FgYellow).SprintFunc()
	errorPrefix = color.New(color.FgRed).SprintFunc()
	debugPrefix = color.New(color.FgMagenta).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Verbose reports whether Debug output is enabled.
func Verbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput redirects log output. A nil writer restores the default
// (os.Stdout for info, os.Stderr for errors).
func SetOutput(info, errs io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if info == nil {
		info = os.Stdout
	}
	if errs == nil {
		errs = os.Stderr
	}
	infoOut = info
	errOut = errs
}

func write(toErr bool, prefix, msg string) {
	mu.Lock()
	defer mu.Unlock()
	w := infoOut
	if toErr {
		w = errOut
	}
	fmt.Fprintln(w, prefix+" "+msg)
}

// Info prints an informational message in blue.
func Info(msg string) {
	write(false, infoPrefix("[INFO]"), msg)
}

// Warn prints a warning message in yellow.
func Warn(msg string) {
	write(false, warnPrefix("[WARN]"), msg)
}

// Error prints an error message to the error writer in red.
func Error(msg string) {
	write(true, errorPrefix("[ERROR]"), msg)
}

// Debug prints a debug message in magenta, only when verbose mode is enabled.
func Debug(msg string) {
	if !Verbose() {
		return
	}
	write(false, debugPrefix("[DEBUG]"), msg)
}

// Debugf is Debug with fmt.Sprintf formatting. Arguments are not formatted
// when verbose mode is off.
func Debugf(format string, args ...any) {
	if !Verbose() {
		return
	}
	Debug(fmt.Sprintf(format, args...))
}
