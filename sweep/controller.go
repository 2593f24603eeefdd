// SPDX-License-Identifier: MIT
// Package: spinmix/sweep
//
// controller.go: the sweep loop.
//
// Contract:
//   • Points are visited in increasing order; all k trials of a point finish
//     before the next point starts.
//   • Each coalesced trial becomes one record.Record, appended immediately.
//   • Trial i of point j (both 0-based) uses stream j·k + i.
//   • The first sink error or context error stops the sweep; records already
//     appended stay in the sink.

package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/spinmix/coupling"
	"github.com/katalvlaran/spinmix/record"
)

const (
	methodNewController = "NewController"
	methodRun           = "Run"
)

// Runner executes one trial at param with the given randomness.
// *coupling.Engine satisfies it.
type Runner interface {
	RunWith(ctx context.Context, param float64, rng *rand.Rand) (coupling.Result, error)
}

// Summary describes a finished (or interrupted) sweep.
type Summary struct {
	// Points is the number of parameter values started.
	Points int
	// Trials is the number of records appended to the sink.
	Trials int
	// Capped is the number of trials stopped by the engine's step cap.
	Capped int
	// Elapsed is the wall time of the whole sweep.
	Elapsed time.Duration
}

// Controller runs sweeps. It holds no per-sweep state, so one Controller may
// run several sweeps one after another.
type Controller struct {
	runner Runner
	cfg    controllerConfig
}

// NewController binds a runner and applies opts.
func NewController(r Runner, opts ...Option) (*Controller, error) {
	if r == nil {
		return nil, fmt.Errorf("%s: %w", methodNewController, ErrNilRunner)
	}
	return &Controller{runner: r, cfg: newControllerConfig(opts...)}, nil
}

// Seed returns the base seed of the trial streams, for reproducing a run.
func (c *Controller) Seed() int64 { return c.cfg.seed }

// Workers returns the configured trial concurrency.
func (c *Controller) Workers() int { return c.cfg.workers }

// run carries the mutable state of one Run call.
type run struct {
	c        *Controller
	sink     record.Sink
	trials   int
	mu       sync.Mutex
	sum      Summary
	progress *rate.Sometimes
}

// Run sweeps rg with trials trials per point, appending records to sink.
func (c *Controller) Run(ctx context.Context, rg Range, trials int, sink record.Sink) (Summary, error) {
	if trials < 1 {
		return Summary{}, fmt.Errorf("%s: trials=%d: %w", methodRun, trials, ErrBadTrials)
	}
	if sink == nil {
		return Summary{}, fmt.Errorf("%s: %w", methodRun, ErrNilSink)
	}
	points, err := rg.Points()
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", methodRun, err)
	}

	r := &run{c: c, sink: sink, trials: trials}
	if c.cfg.progressInterval > 0 {
		r.progress = &rate.Sometimes{Interval: c.cfg.progressInterval}
	}

	log := c.cfg.logger
	log.Info("sweep started",
		slog.Float64("low", rg.Low),
		slog.Float64("high", rg.High),
		slog.Float64("step", rg.Step),
		slog.Int("points", len(points)),
		slog.Int("trials", trials),
		slog.Int("workers", c.cfg.workers),
		slog.Int64("seed", c.cfg.seed),
	)

	start := time.Now()
	for j, p := range points {
		if err = ctx.Err(); err != nil {
			break
		}
		r.sum.Points++
		if c.cfg.observer != nil {
			c.cfg.observer.PointStarted(p)
		}
		log.Debug("point", slog.Float64("param", p), slog.Int("index", j))

		base := uint64(j) * uint64(trials)
		if c.cfg.workers == 1 {
			err = r.sequential(ctx, p, base)
		} else {
			err = r.parallel(ctx, p, base)
		}
		if err != nil {
			break
		}
	}
	r.sum.Elapsed = time.Since(start)

	if r.sum.Capped > 0 {
		log.Warn("trials hit the step cap and were not recorded", slog.Int("capped", r.sum.Capped))
	}
	if err != nil {
		log.Error("sweep stopped", slog.Any("error", err),
			slog.Int("points", r.sum.Points), slog.Int("trials", r.sum.Trials))
		return r.sum, fmt.Errorf("%s: %w", methodRun, err)
	}
	log.Info("sweep finished",
		slog.Int("points", r.sum.Points),
		slog.Int("trials", r.sum.Trials),
		slog.Duration("elapsed", r.sum.Elapsed),
	)
	return r.sum, nil
}

func (r *run) sequential(ctx context.Context, p float64, base uint64) error {
	for i := 0; i < r.trials; i++ {
		if err := r.one(ctx, p, base+uint64(i)); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) parallel(ctx context.Context, p float64, base uint64) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.c.cfg.workers)
	for i := 0; i < r.trials; i++ {
		stream := base + uint64(i)
		g.Go(func() error {
			return r.one(gctx, p, stream)
		})
	}
	return g.Wait()
}

// one runs a single trial and records its outcome.
func (r *run) one(ctx context.Context, p float64, stream uint64) error {
	res, err := r.c.runner.RunWith(ctx, p, trialRNG(r.c.cfg.seed, stream))
	capped := errors.Is(err, coupling.ErrNotCoalesced)
	if err != nil && !capped {
		return err
	}
	if r.c.cfg.observer != nil {
		r.c.cfg.observer.TrialDone(p, res, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if capped {
		r.sum.Capped++
		r.c.cfg.logger.Debug("trial capped", slog.Float64("param", p), slog.Uint64("steps", res.Steps))
		return nil
	}
	if err = r.sink.Append(record.Record{Param: p, Iterations: res.Steps, Duration: res.Duration}); err != nil {
		return fmt.Errorf("append param=%g: %w", p, err)
	}
	r.sum.Trials++
	if r.progress != nil {
		done := r.sum.Trials
		r.progress.Do(func() {
			r.c.cfg.logger.Info("progress",
				slog.Float64("param", p),
				slog.Int("trials", done),
				slog.Uint64("steps", res.Steps),
				slog.Duration("duration", res.Duration),
			)
		})
	}
	return nil
}
