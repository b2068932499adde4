package jvm

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// InvokerPrefix starts the one stderr line MainInvoker writes on failure:
// "main-invoker: <kind>: <message>", where kind is target-not-found,
// method-not-found or invocation-failed.
const InvokerPrefix = "main-invoker: "

const invokerFile = "MainInvoker.java"

//go:embed bootstrap/MainInvoker.java
var invokerSource []byte

// RunMain calls class's public static main(String[]) with args through a
// reflective bootstrap run in source-file mode (JDK 11+). Unlike handing the
// class to the launcher directly, this rejects entry points that newer
// launchers accept, such as instance or argument-less main methods.
func (l *Launcher) RunMain(ctx context.Context, stdout io.Writer, class string, args ...string) (*Result, error) {
	dir, err := os.MkdirTemp("", "check-fop-")
	if err != nil {
		return nil, fmt.Errorf("create bootstrap dir: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, invokerFile)
	if err := os.WriteFile(src, invokerSource, 0644); err != nil {
		return nil, fmt.Errorf("write bootstrap: %w", err)
	}

	return l.Run(ctx, stdout, src, append([]string{class}, args...)...)
}
