// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spinmix/coupling"
	"github.com/katalvlaran/spinmix/internal/report"
	"github.com/katalvlaran/spinmix/model"
)

func (a *app) newTrialCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "trial <model> <n> <param>",
		Short: "Run one coupled trial and print its coalescence time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return a.usageError(cmd, "want 3 arguments, got %d", len(args))
			}
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return a.usageError(cmd, "%v", err)
			}
			m, err := model.Lookup(args[0])
			if err != nil {
				return a.usageError(cmd, "%v", err)
			}
			n, err := parseSize(args[1])
			if err != nil {
				return a.usageError(cmd, "%v", err)
			}
			param, err := parseFloat("param", args[2])
			if err != nil {
				return a.usageError(cmd, "%v", err)
			}
			f.apply(cmd, &cfg)
			if err = cfg.Validate(); err != nil {
				return a.usageError(cmd, "%v", err)
			}

			logger, err := a.newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Close()

			seed := pickSeed(cfg.Seed)
			eng, err := engineFor(m, n, cfg, seed)
			if err != nil {
				return a.usageError(cmd, "%v", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Debug("trial started", slog.String("model", m.Name), slog.Int("n", n),
				slog.Float64("param", param), slog.Int64("seed", seed))
			res, err := eng.Run(ctx, param)
			if err != nil && !errors.Is(err, coupling.ErrNotCoalesced) {
				return err
			}
			if err != nil {
				logger.Warn("trial hit the step cap", slog.Uint64("steps", res.Steps))
			}
			return report.WriteTrial(a.stdout, report.Trial{Model: m.Name, N: n, Param: param, Result: res}, styled(a.stdout))
		},
	}
	f.bind(cmd)
	return cmd
}
