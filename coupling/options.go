// SPDX-License-Identifier: MIT
// Package: spinmix/coupling
//
// options.go: functional options for Engine.
//
// Contract:
//   • Options are applied in order; later ones override earlier ones.
//   • Option constructors validate and PANIC on meaningless input (nil RNG,
//     nil clock, unknown criterion). Engine methods never panic.
//
// Defaults:
//   • rng       = seeded once from the wall clock at NewEngine
//   • maxSteps  = 0 (unbounded)
//   • criterion = Sitewise
//   • now       = time.Now

package coupling

import (
	"math/rand"
	"time"
)

// Criterion selects the coalescence test.
type Criterion int

const (
	// Sitewise stops when X and Y agree at every site.
	Sitewise Criterion = iota
	// Magnetization stops when X and Y have equal Up counts.
	Magnetization
)

// String returns "sitewise" or "magnetization".
func (c Criterion) String() string {
	switch c {
	case Sitewise:
		return "sitewise"
	case Magnetization:
		return "magnetization"
	default:
		return "unknown"
	}
}

// ParseCriterion maps "sitewise"/"magnetization" (or "" for the default) to a Criterion.
func ParseCriterion(s string) (Criterion, bool) {
	switch s {
	case "", "sitewise":
		return Sitewise, true
	case "magnetization":
		return Magnetization, true
	default:
		return Sitewise, false
	}
}

// engineConfig holds every Engine knob. It is copied into the Engine by value.
type engineConfig struct {
	rng       *rand.Rand
	maxSteps  uint64
	criterion Criterion
	now       func() time.Time
}

// Option customises an Engine.
type Option func(*engineConfig)

func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		criterion: Sitewise,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// WithSeed gives the Engine a deterministic RNG stream.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("coupling: WithRand(nil)")
	}
	return func(c *engineConfig) {
		c.rng = r
	}
}

// WithMaxSteps caps the number of steps per trial; 0 means unbounded.
func WithMaxSteps(n uint64) Option {
	return func(c *engineConfig) {
		c.maxSteps = n
	}
}

// WithCriterion selects the coalescence test. Panics on an unknown value.
func WithCriterion(cr Criterion) Option {
	if cr != Sitewise && cr != Magnetization {
		panic("coupling: WithCriterion(unknown)")
	}
	return func(c *engineConfig) {
		c.criterion = cr
	}
}

// WithClock replaces time.Now for duration measurement. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("coupling: WithClock(nil)")
	}
	return func(c *engineConfig) {
		c.now = now
	}
}
