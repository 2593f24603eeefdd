// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spinmix/internal/config"
	"github.com/katalvlaran/spinmix/internal/logging"
	"github.com/katalvlaran/spinmix/internal/report"
)

const serviceName = "spinmix"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
	logDir     string
	quiet      bool
}

// app carries the writers and global options into the subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	global globalOptions
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "spinmix",
		Short: "Estimate mixing times of spin chains by coupling",
		Long: `spinmix runs two copies of a Glauber or Metropolis chain, one started all up
and one all down, on shared randomness until they agree, and records how many
steps that took. Sweeping the coupling parameter locates the phase transition.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.global.configPath, "config", "", "YAML run file providing defaults for every flag")
	pf.StringVar(&a.global.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.global.logJSON, "log-json", false, "log as JSON instead of text")
	pf.StringVar(&a.global.logDir, "log-dir", "", "also write JSON logs to this directory")
	pf.BoolVar(&a.global.quiet, "quiet", false, "no log output on stderr (--log-dir still receives it)")

	root.AddCommand(
		a.newSweepCmd(),
		a.newTrialCmd(),
		a.newSummaryCmd(),
		a.newModelsCmd(),
		a.newConfigCmd(),
	)
	return root
}

// loadConfig returns Default() or the --config file, with the persistent
// logging flags applied when they were set explicitly.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if a.global.configPath != "" {
		var err error
		if cfg, err = config.Load(a.global.configPath); err != nil {
			return config.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.global.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.global.logJSON
	}
	if flags.Changed("log-dir") {
		cfg.Log.Dir = a.global.logDir
	}
	if flags.Changed("quiet") {
		cfg.Log.Quiet = a.global.quiet
	}
	return cfg, nil
}

// newLogger builds the process logger from cfg; logs go to stderr.
func (a *app) newLogger(cfg config.Config) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{
		Level:   level,
		JSON:    cfg.Log.JSON,
		Service: serviceName,
		LogDir:  cfg.Log.Dir,
		Quiet:   cfg.Log.Quiet,
		Output:  a.stderr,
	})
}

// styled reports whether w is a terminal that should get lipgloss output.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && report.IsTerminal(f)
}

// usageError prints msg to stderr and the command usage to stdout. Usage errors are
// not failures: the command returns nil and the process exits 0.
func (a *app) usageError(cmd *cobra.Command, format string, args ...any) error {
	if format != "" {
		fmt.Fprintf(a.stderr, "error: "+format+"\n", args...)
	}
	_ = cmd.Usage()
	return nil
}

func parseSize(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("size %q is not a positive integer", s)
	}
	return n, nil
}

func parseFloat(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", name, s)
	}
	return f, nil
}
