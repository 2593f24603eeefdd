// SPDX-License-Identifier: MIT
// Package: spinmix/coupling
//
// engine.go: the coalescence loop.
//
// Contract:
//   • Each Run builds a fresh trial; nothing carries over between trials.
//   • Steps counts completed coupled updates; a coalesced Result has Steps ≥ 1.
//   • Duration is measured with the configured clock around the whole loop.
//   • Context cancellation is observed every ctxPollMask+1 steps; the partial
//     Result is returned alongside ctx.Err().
//
// Complexity:
//   • Per step: two rule evaluations + O(1) bookkeeping.

package coupling

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/spinmix/dynamics"
	"github.com/katalvlaran/spinmix/lattice"
)

const (
	methodNewEngine = "NewEngine"
	methodRun       = "Run"

	// ctxPollMask makes the loop poll ctx once every 4096 steps.
	ctxPollMask = 1<<12 - 1
)

// Result is the outcome of one trial.
type Result struct {
	// Steps is the number of coupled updates performed.
	Steps uint64
	// Duration is the elapsed time of the trial.
	Duration time.Duration
	// Coalesced is false only when the step cap or the context stopped the trial.
	Coalesced bool
}

// Engine runs coupled trials of one rule on one topology.
type Engine struct {
	topo lattice.Topology
	rule dynamics.Rule
	cfg  engineConfig
}

// NewEngine validates its inputs and applies opts.
func NewEngine(topo lattice.Topology, rule dynamics.Rule, opts ...Option) (*Engine, error) {
	if topo == nil {
		return nil, fmt.Errorf("%s: %w", methodNewEngine, ErrNilTopology)
	}
	if rule == nil {
		return nil, fmt.Errorf("%s: %w", methodNewEngine, ErrNilRule)
	}
	return &Engine{topo: topo, rule: rule, cfg: newEngineConfig(opts...)}, nil
}

// Topology returns the engine's topology.
func (e *Engine) Topology() lattice.Topology { return e.topo }

// Rule returns the engine's update rule.
func (e *Engine) Rule() dynamics.Rule { return e.rule }

// Run executes one trial at param using the Engine's own RNG.
func (e *Engine) Run(ctx context.Context, param float64) (Result, error) {
	return e.RunWith(ctx, param, e.cfg.rng)
}

// RunWith executes one trial at param drawing all randomness from rng.
// It is safe to call concurrently as long as each caller owns its rng.
func (e *Engine) RunWith(ctx context.Context, param float64, rng *rand.Rand) (Result, error) {
	t := newTrial(e.topo, e.rule, param, e.cfg.criterion)
	start := e.cfg.now()

	var steps uint64
	for !t.coalesced() {
		if e.cfg.maxSteps > 0 && steps >= e.cfg.maxSteps {
			res := Result{Steps: steps, Duration: e.cfg.now().Sub(start)}
			return res, fmt.Errorf("%s: param=%g after %d steps: %w", methodRun, param, steps, ErrNotCoalesced)
		}
		if steps&ctxPollMask == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Steps: steps, Duration: e.cfg.now().Sub(start)}, err
			}
		}
		t.step(rng)
		steps++
	}

	return Result{Steps: steps, Duration: e.cfg.now().Sub(start), Coalesced: true}, nil
}
