package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// fakeJavaHome creates a JAVA_HOME whose bin/java runs script.
func fakeJavaHome(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping on windows")
	}

	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	require.NoError(t, os.MkdirAll(bin, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "java"), []byte(script), 0755))
	return home
}

// fopJava behaves like a JVM with FOP on the classpath.
const fopJava = `#!/bin/sh
for arg in "$@"; do
  if [ "$arg" = "org.apache.fop.cli.Main" ]; then
    echo "FOP Version 2.9"
    exit 0
  fi
done
echo "Error: Could not find or load main class $1" >&2
exit 1
`

// missingFopJava behaves like a JVM without FOP on the classpath.
const missingFopJava = `#!/bin/sh
echo "main-invoker: target-not-found: org.apache.fop.cli.Main" >&2
exit 1
`

// badMainJava behaves like a JVM where the class exists but has no public main(String[]).
const badMainJava = `#!/bin/sh
echo "main-invoker: method-not-found: org.apache.fop.cli.Main.main([Ljava.lang.String;)" >&2
exit 1
`

// instanceMainJava behaves like a JVM where main(String[]) exists but is not static.
const instanceMainJava = `#!/bin/sh
echo "main-invoker: method-not-found: org.apache.fop.cli.Main.main([Ljava.lang.String;) is not static" >&2
exit 1
`

// throwingJava behaves like a JVM where main raises after writing its own error line.
const throwingJava = `#!/bin/sh
echo "Error: unknown option -version" >&2
echo "main-invoker: invocation-failed: unknown option -version (see -help)" >&2
exit 1
`

// oldLauncherJava behaves like a pre-11 JVM that cannot run source files.
const oldLauncherJava = `#!/bin/sh
echo "Error: Could not find or load main class $1" >&2
exit 1
`

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_TargetPresent(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, fopJava))

	code, stdout, stderr := runCLI(t)
	assert.Equal(t, 0, code)
	assert.Equal(t, "FOP Version 2.9\n", stdout, "target output is passed through")
	assert.Empty(t, stderr)
}

func TestRun_TargetAbsent(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, missingFopJava))

	code, stdout, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "FOP test error: org.apache.fop.cli.Main\n", stderr)
}

func TestRun_EntryMethodMissing(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, badMainJava))

	code, _, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Equal(t, "FOP test error: org.apache.fop.cli.Main.main([Ljava.lang.String;)\n", stderr)
}

func TestRun_EntryMethodNotStatic(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, instanceMainJava))

	code, stdout, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "FOP test error: org.apache.fop.cli.Main.main([Ljava.lang.String;) is not static\n", stderr)
}

func TestRun_LauncherWithoutSourceFileMode(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, oldLauncherJava))

	code, _, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr, "FOP test error: Could not find or load main class "), stderr)
	assert.True(t, strings.HasSuffix(stderr, "MainInvoker.java\n"), stderr)
}

func TestRun_InvocationRaises(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, throwingJava))

	code, _, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Equal(t, "FOP test error: unknown option -version (see -help)\n", stderr)
}

func TestRun_InvocationRaisesWithoutMessage(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, `#!/bin/sh
echo "main-invoker: invocation-failed: " >&2
exit 1
`))

	code, _, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Equal(t, "FOP test error: \n", stderr)
}

func TestRun_JavaLauncherMissing(t *testing.T) {
	t.Setenv("JAVA_HOME", "")
	t.Setenv("PATH", t.TempDir())

	code, _, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr, "FOP test error: java launcher:"), stderr)
	assert.Equal(t, 1, strings.Count(stderr, "\n"), "exactly one line")
}

func TestRun_Idempotent(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, missingFopJava))

	first, _, firstErr := runCLI(t)
	second, _, secondErr := runCLI(t)
	assert.Equal(t, first, second)
	assert.Equal(t, firstErr, secondErr)
}

func TestRun_ClasspathFlagPassedToJava(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	home := fakeJavaHome(t, `#!/bin/sh
printf '%s\n' "$@" > `+argsFile+`
`)

	t.Setenv("JAVA_HOME", "")

	code, _, stderr := runCLI(t, "--java-home", home, "--classpath", "/opt/fop/build/fop.jar")
	require.Equal(t, 0, code, stderr)

	recorded, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimSuffix(string(recorded), "\n"), "\n")
	require.Len(t, args, 5)
	assert.Equal(t, []string{"-cp", "/opt/fop/build/fop.jar"}, args[:2])
	assert.Equal(t, "MainInvoker.java", filepath.Base(args[2]))
	assert.Equal(t, []string{"org.apache.fop.cli.Main", "-version"}, args[3:])
}

func TestRun_ConfigFile(t *testing.T) {
	home := fakeJavaHome(t, fopJava)
	t.Setenv("JAVA_HOME", "/nonexistent-java-home-abc123")

	conf := filepath.Join(t.TempDir(), "probe.conf")
	require.NoError(t, os.WriteFile(conf, []byte("JAVA_HOME="+home+"\n"), 0644))

	code, stdout, stderr := runCLI(t, "--config", conf)
	assert.Equal(t, 0, code)
	assert.Equal(t, "[WARN] ignoring $JAVA_HOME=/nonexistent-java-home-abc123 in favour of configured java home "+home+"\n"+
		"FOP Version 2.9\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_MissingConfigFile(t *testing.T) {
	code, _, stderr := runCLI(t, "--config", "/nonexistent/probe.conf")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[ERROR] --config")
}

func TestRun_VerboseLogsToStdoutOnly(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, fopJava))

	code, stdout, stderr := runCLI(t, "--verbose")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "[DEBUG] probing org.apache.fop.cli.Main -version")
	assert.Contains(t, stdout, "[DEBUG] java launcher available: true")
	assert.Contains(t, stdout, "FOP Version 2.9")
	assert.Contains(t, stdout, "[INFO] org.apache.fop.cli.Main is available")
	assert.Contains(t, stdout, "[DEBUG] exit 0 (Success)")
	assert.Empty(t, stderr)
}

func TestRun_VerboseFailureLogsExitName(t *testing.T) {
	t.Setenv("JAVA_HOME", fakeJavaHome(t, missingFopJava))

	code, stdout, stderr := runCLI(t, "-v")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "[DEBUG] exit 1 (Failure)")
	assert.NotContains(t, stdout, "[INFO]")
	assert.Equal(t, "FOP test error: org.apache.fop.cli.Main\n", stderr)
}

func TestRun_NoWarningWhenJavaHomeMatches(t *testing.T) {
	home := fakeJavaHome(t, fopJava)
	t.Setenv("JAVA_HOME", home)

	code, stdout, _ := runCLI(t, "--java-home", home)
	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout, "[WARN]")
}

func TestRun_RejectsPositionalArguments(t *testing.T) {
	code, _, stderr := runCLI(t, "extra")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[ERROR]")
	assert.NotContains(t, stderr, "FOP test error")
}

func TestRun_Version(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "dev (commit: unknown, built: unknown)")
	assert.Empty(t, stderr)
}
