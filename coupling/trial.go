// SPDX-License-Identifier: MIT
// Package: spinmix/coupling
//
// trial.go: one coupled pair (X, Y) and its difference counter.
//
// Invariant (checked by tests after every step):
//   diff == |{ i : X[i] != Y[i] }|
// diff is adjusted from the chosen site only; it is never recomputed by a scan.

package coupling

import (
	"math/rand"

	"github.com/katalvlaran/spinmix/dynamics"
	"github.com/katalvlaran/spinmix/lattice"
	"github.com/katalvlaran/spinmix/spin"
)

// chain binds a state to the shared topology and satisfies dynamics.View.
type chain struct {
	topo  lattice.Topology
	state *spin.State
}

func (c *chain) At(site int) spin.Spin { return c.state.At(site) }

func (c *chain) Neighborhood(site int) lattice.Neighborhood {
	return c.topo.Neighborhood(c.state, site)
}

func (c *chain) EachNeighbor(site int, fn func(nb int)) { c.topo.EachNeighbor(site, fn) }

// trial is exclusively owned by one Run call.
type trial struct {
	rule      dynamics.Rule
	beta      float64
	size      int
	criterion Criterion
	x, y      chain
	diff      int
}

// newTrial starts X at all Up and Y at all Down; every site disagrees.
func newTrial(topo lattice.Topology, rule dynamics.Rule, param float64, cr Criterion) *trial {
	n := topo.Size()
	return &trial{
		rule:      rule,
		beta:      topo.Coupling(param),
		size:      n,
		criterion: cr,
		x:         chain{topo: topo, state: spin.New(n, spin.Up)},
		y:         chain{topo: topo, state: spin.New(n, spin.Down)},
		diff:      n,
	}
}

// coalesced reports whether the trial reached its terminal state.
func (t *trial) coalesced() bool {
	if t.criterion == Magnetization {
		return t.x.state.Positive() == t.y.state.Positive()
	}
	return t.diff == 0
}

// step performs one coupled update. Draw order: site, candidate (only for
// rules that propose), then r.
func (t *trial) step(rng *rand.Rand) {
	site := rng.Intn(t.size)

	candidate := spin.Up
	if t.rule.Proposes() {
		candidate = spin.FromCoin(rng.Intn(2) == 0)
	}

	// Both verdicts are computed before either chain is written.
	mx := t.rule.Move(&t.x, site, candidate, t.beta)
	my := t.rule.Move(&t.y, site, candidate, t.beta)

	r := rng.Float64()

	wasSame := t.x.state.At(site) == t.y.state.At(site)
	t.x.state.Set(site, mx.Resolve(r))
	t.y.state.Set(site, my.Resolve(r))
	isSame := t.x.state.At(site) == t.y.state.At(site)

	switch {
	case wasSame && !isSame:
		t.diff++
	case !wasSame && isSame:
		t.diff--
	}
}
