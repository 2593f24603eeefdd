// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spinmix/coupling"
	"github.com/katalvlaran/spinmix/internal/config"
	"github.com/katalvlaran/spinmix/internal/telemetry"
	"github.com/katalvlaran/spinmix/model"
	"github.com/katalvlaran/spinmix/record"
	"github.com/katalvlaran/spinmix/sweep"
)

// runFlags are the flags shared by sweep and trial.
type runFlags struct {
	seed      int64
	maxSteps  uint64
	criterion string
}

func (f *runFlags) bind(cmd *cobra.Command) {
	def := config.Default()
	fl := cmd.Flags()
	fl.Int64Var(&f.seed, "seed", def.Seed, "base random seed (0 picks one from the clock)")
	fl.Uint64Var(&f.maxSteps, "max-steps", def.MaxSteps, "give up on a trial after this many steps (0 = never)")
	fl.StringVar(&f.criterion, "criterion", def.Criterion, "coalescence test: sitewise or magnetization")
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("max-steps") {
		cfg.MaxSteps = f.maxSteps
	}
	if fl.Changed("criterion") {
		cfg.Criterion = f.criterion
	}
}

// engineFor builds the model's topology and a coupling engine from cfg.
func engineFor(m model.Model, n int, cfg config.Config, seed int64) (*coupling.Engine, error) {
	topo, err := m.Build(n)
	if err != nil {
		return nil, err
	}
	cr, ok := coupling.ParseCriterion(cfg.Criterion)
	if !ok {
		return nil, fmt.Errorf("criterion %q: %w", cfg.Criterion, config.ErrInvalid)
	}
	return coupling.NewEngine(topo, m.Rule,
		coupling.WithSeed(seed),
		coupling.WithMaxSteps(cfg.MaxSteps),
		coupling.WithCriterion(cr),
	)
}

func pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

type sweepFlags struct {
	runFlags
	workers     int
	outDir      string
	sink        string
	sqlitePath  string
	metricsAddr string
	progress    time.Duration
}

func (a *app) newSweepCmd() *cobra.Command {
	var f sweepFlags
	cmd := &cobra.Command{
		Use:   "sweep <model> <n> <trials> [low high step]",
		Short: "Run trials across a parameter range and record the coalescence times",
		Long: `Runs <trials> coupled trials for every parameter value from low to high
(inclusive, accumulating step) on a model of size n. Without a range the
model's default range is used. Each finished trial is appended to the output
immediately, so an interrupted sweep keeps its records.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSweep(cmd, args, &f)
		},
	}
	def := config.Default()
	f.bind(cmd)
	fl := cmd.Flags()
	fl.IntVar(&f.workers, "workers", def.Workers, "trials of one parameter value run concurrently")
	fl.StringVar(&f.outDir, "out", def.Output.Dir, "directory for result files")
	fl.StringVar(&f.sink, "sink", def.Output.Sink, "where records go: file or sqlite")
	fl.StringVar(&f.sqlitePath, "sqlite", def.Output.SQLitePath, "database path for --sink sqlite")
	fl.StringVar(&f.metricsAddr, "metrics-addr", def.Metrics.Addr, "serve Prometheus metrics on this address (e.g. :9090)")
	fl.DurationVar(&f.progress, "progress", def.ProgressInterval, "log progress at most this often (0 disables)")
	return cmd
}

// resolveSweep merges config file, positional arguments and flags, in that order.
func (a *app) resolveSweep(cmd *cobra.Command, args []string, f *sweepFlags) (config.Config, error) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return cfg, err
	}
	switch len(args) {
	case 0:
	case 3, 6:
		cfg.Model = args[0]
		if cfg.N, err = parseSize(args[1]); err != nil {
			return cfg, err
		}
		if cfg.Trials, err = parseSize(args[2]); err != nil {
			return cfg, fmt.Errorf("trials: %w", err)
		}
		if len(args) == 6 {
			var rg sweep.Range
			if rg.Low, err = parseFloat("low", args[3]); err != nil {
				return cfg, err
			}
			if rg.High, err = parseFloat("high", args[4]); err != nil {
				return cfg, err
			}
			if rg.Step, err = parseFloat("step", args[5]); err != nil {
				return cfg, err
			}
			cfg.Range = &rg
		}
	default:
		return cfg, fmt.Errorf("want 3 or 6 arguments, got %d", len(args))
	}

	f.apply(cmd, &cfg)
	fl := cmd.Flags()
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("out") {
		cfg.Output.Dir = f.outDir
	}
	if fl.Changed("sink") {
		cfg.Output.Sink = f.sink
	}
	if fl.Changed("sqlite") {
		cfg.Output.SQLitePath = f.sqlitePath
	}
	if fl.Changed("metrics-addr") {
		cfg.Metrics.Addr = f.metricsAddr
	}
	if fl.Changed("progress") {
		cfg.ProgressInterval = f.progress
	}

	if cfg.Model == "" || cfg.N == 0 {
		return cfg, fmt.Errorf("model and n are required")
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (a *app) runSweep(cmd *cobra.Command, args []string, f *sweepFlags) error {
	cfg, err := a.resolveSweep(cmd, args, f)
	if err != nil {
		return a.usageError(cmd, "%v", err)
	}
	m, err := model.Lookup(cfg.Model)
	if err != nil {
		return a.usageError(cmd, "%v", err)
	}
	rg := sweep.Range{Low: m.Defaults.Low, High: m.Defaults.High, Step: m.Defaults.Step}
	if cfg.Range != nil {
		rg = *cfg.Range
	}

	logger, err := a.newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	seed := pickSeed(cfg.Seed)
	eng, err := engineFor(m, cfg.N, cfg, seed)
	if err != nil {
		return a.usageError(cmd, "%v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg, m.Name)
	if cfg.Metrics.Addr != "" {
		srv, err := telemetry.Listen(cfg.Metrics.Addr, reg)
		if err != nil {
			return err
		}
		logger.Info("metrics listening", slog.String("addr", srv.Addr()))
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	sink, where, closeSink, err := openSink(ctx, cfg, m, rg, seed)
	if err != nil {
		return err
	}
	defer closeSink()

	ctl, err := sweep.NewController(eng,
		sweep.WithSeed(seed),
		sweep.WithWorkers(cfg.Workers),
		sweep.WithLogger(logger.With(slog.String("model", m.Name), slog.Int("n", cfg.N))),
		sweep.WithObserver(metrics),
		sweep.WithProgressInterval(cfg.ProgressInterval),
	)
	if err != nil {
		return err
	}

	sum, err := ctl.Run(ctx, rg, cfg.Trials, sink)
	fmt.Fprintf(a.stdout, "%d records (%d capped) over %d points in %s -> %s\n",
		sum.Trials, sum.Capped, sum.Points, sum.Elapsed.Round(time.Millisecond), where)
	return err
}

// openSink creates the file or SQLite sink named by cfg and returns a
// description of where records go plus a close function.
func openSink(ctx context.Context, cfg config.Config, m model.Model, rg sweep.Range, seed int64) (record.Sink, string, func(), error) {
	now := time.Now()
	switch cfg.Output.Sink {
	case config.SinkSQLite:
		store, err := record.OpenSQLite(ctx, cfg.Output.SQLitePath)
		if err != nil {
			return nil, "", nil, err
		}
		sink, err := store.BeginRun(ctx, record.RunInfo{
			Model: m.Name, N: cfg.N, Trials: cfg.Trials,
			Low: rg.Low, High: rg.High, Step: rg.Step,
			Seed: seed, StartedAt: now,
		})
		if err != nil {
			_ = store.Close()
			return nil, "", nil, err
		}
		where := fmt.Sprintf("%s (run %s)", cfg.Output.SQLitePath, sink.RunID())
		return sink, where, func() { _ = sink.Close(); _ = store.Close() }, nil
	default:
		name := record.FileName(m.Name, cfg.N, cfg.Trials, rg.Low, rg.High, rg.Step, now)
		sink, err := record.CreateFile(filepath.Join(cfg.Output.Dir, name))
		if err != nil {
			return nil, "", nil, err
		}
		return sink, sink.Path(), func() { _ = sink.Close() }, nil
	}
}
