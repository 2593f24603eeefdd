// SPDX-License-Identifier: MIT
// Package: spinmix/sweep
//
// options.go: functional options for Controller.
//
// Defaults:
//   • workers          = 1 (sequential, records reach the sink in trial order)
//   • seed             = wall clock at NewController
//   • logger           = discard
//   • observer         = none
//   • progressInterval = 0 (no per-trial progress lines)

package sweep

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/spinmix/coupling"
)

// Observer receives sweep events. Implementations must be safe for concurrent
// use when the controller runs with more than one worker.
type Observer interface {
	// PointStarted is called before the first trial of param.
	PointStarted(param float64)
	// TrialDone is called once per finished trial; err is nil or wraps
	// coupling.ErrNotCoalesced.
	TrialDone(param float64, res coupling.Result, err error)
}

type controllerConfig struct {
	workers          int
	seed             int64
	logger           *slog.Logger
	observer         Observer
	progressInterval time.Duration
}

// Option customises a Controller.
type Option func(*controllerConfig)

func newControllerConfig(opts ...Option) controllerConfig {
	cfg := controllerConfig{
		workers: 1,
		seed:    time.Now().UnixNano(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers sets how many trials of one point may run at once. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("sweep: WithWorkers(w < 1)")
	}
	return func(c *controllerConfig) {
		c.workers = w
	}
}

// WithSeed fixes the base seed of all trial streams. 0 is replaced by 1.
func WithSeed(seed int64) Option {
	return func(c *controllerConfig) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.seed = seed
	}
}

// WithLogger routes controller logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sweep: WithLogger(nil)")
	}
	return func(c *controllerConfig) {
		c.logger = l
	}
}

// WithObserver attaches o (for example the telemetry metrics). Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("sweep: WithObserver(nil)")
	}
	return func(c *controllerConfig) {
		c.observer = o
	}
}

// WithProgressInterval logs a progress line at most once per d. 0 disables it.
func WithProgressInterval(d time.Duration) Option {
	return func(c *controllerConfig) {
		if d < 0 {
			d = 0
		}
		c.progressInterval = d
	}
}
