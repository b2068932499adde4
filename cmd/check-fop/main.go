package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/check-fop/internal/cli"
	"github.com/CodexForgeBR/check-fop/internal/config"
	"github.com/CodexForgeBR/check-fop/internal/exitcode"
	"github.com/CodexForgeBR/check-fop/internal/jvm"
	"github.com/CodexForgeBR/check-fop/internal/logging"
	"github.com/CodexForgeBR/check-fop/internal/probe"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if code := run(os.Args[1:], os.Stdout, os.Stderr); code != exitcode.Success {
		os.Exit(code)
	}
}

// run executes the probe command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logging.SetOutput(stdout, stderr)
	defer logging.SetOutput(nil, nil)
	defer logging.SetVerbose(false)

	cfg := config.NewDefaultConfig()
	code := exitcode.Success

	rootCmd := &cobra.Command{
		Use:     "check-fop",
		Short:   "Apache FOP availability probe",
		Long:    "check-fop verifies that org.apache.fop.cli.Main can be resolved and invoked with -version.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cfg); err != nil {
				return err
			}
			code = runProbe(cmd, cfg, stdout, stderr)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cli.BindFlags(rootCmd, cfg)
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Error(err.Error())
		return exitcode.Failure
	}
	return code
}

func runProbe(cmd *cobra.Command, cfg *config.Config, stdout, stderr io.Writer) int {
	finalCfg, err := config.LoadWithPrecedence(config.ProjectFile, cfg.ConfigFile, cli.BuildOverrides(cmd, cfg))
	if err != nil {
		logging.Error(fmt.Sprintf("load config: %v", err))
		return exitcode.Failure
	}
	logging.SetVerbose(finalCfg.Verbose)
	logging.Debugf("java home %q, classpath %q (empty means inherited)", finalCfg.JavaHome, finalCfg.Classpath)

	if env := os.Getenv("JAVA_HOME"); env != "" && finalCfg.JavaHome != "" && env != finalCfg.JavaHome {
		logging.Warn(fmt.Sprintf("ignoring $JAVA_HOME=%s in favour of configured java home %s", env, finalCfg.JavaHome))
	}
	logging.Debugf("java launcher available: %t", jvm.CheckAvailability(finalCfg.JavaHome))

	code := exitcode.Success
	p := probe.New(&jvm.Launcher{
		JavaHome:  finalCfg.JavaHome,
		Classpath: finalCfg.Classpath,
	})
	if err := p.Run(context.Background(), stdout); err != nil {
		probe.Report(stderr, err)
		code = exitcode.Failure
	} else if logging.Verbose() {
		logging.Info(probe.TargetClass + " is available")
	}

	logging.Debugf("exit %d (%s)", code, exitcode.Name(code))
	return code
}
