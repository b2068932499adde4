// Package jvm spawns the Java launcher to run a class's main entry point.
package jvm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Result is the outcome of a launcher run that got as far as starting the JVM.
type Result struct {
	JavaPath string
	ExitCode int    // -1 when the JVM was terminated by a signal
	Status   string // "exit status 1", "signal: killed"; empty on success
	Stderr   []byte
}

// Launcher runs classes through a Java launcher binary.
//
// Empty fields fall back to the process environment: JavaHome to $JAVA_HOME
// and then to "java" on PATH, Classpath to whatever $CLASSPATH the JVM sees.
type Launcher struct {
	JavaHome  string
	Classpath string
}

func javaBinary() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}

// ResolveJava returns the path of the java binary this launcher will spawn.
func (l *Launcher) ResolveJava() (string, error) {
	home := l.JavaHome
	if home == "" {
		home = os.Getenv("JAVA_HOME")
	}
	if home != "" {
		path := filepath.Join(home, "bin", javaBinary())
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("java launcher: %w", err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("java launcher: %s is a directory", path)
		}
		return path, nil
	}

	path, err := exec.LookPath(javaBinary())
	if err != nil {
		return "", fmt.Errorf("java launcher: %w", err)
	}
	return path, nil
}

// BuildArgs constructs the launcher argument list for running class with args.
func (l *Launcher) BuildArgs(class string, args ...string) []string {
	out := make([]string, 0, len(args)+3)
	if l.Classpath != "" {
		out = append(out, "-cp", l.Classpath)
	}
	out = append(out, class)
	return append(out, args...)
}

// Run spawns the launcher for class with args. The child's stdout is copied
// to stdout (discarded when nil); its stderr is captured into the Result.
//
// A non-zero exit status is reported through Result.ExitCode, not as an
// error. The error return is reserved for a launcher that could not be
// resolved or started.
func (l *Launcher) Run(ctx context.Context, stdout io.Writer, class string, args ...string) (*Result, error) {
	javaPath, err := l.ResolveJava()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, javaPath, l.BuildArgs(class, args...)...)
	if stdout == nil {
		stdout = io.Discard
	}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	res := &Result{JavaPath: javaPath, Stderr: stderr.Bytes()}
	if runErr == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		res.Status = exitErr.String()
		return res, nil
	}
	return nil, fmt.Errorf("java command failed: %w", runErr)
}

// CheckAvailability reports whether a java launcher resolves for javaHome
// (empty means $JAVA_HOME, then PATH).
func CheckAvailability(javaHome string) bool {
	l := &Launcher{JavaHome: javaHome}
	_, err := l.ResolveJava()
	return err == nil
}
