// SPDX-License-Identifier: MIT
// Package: spinmix/dynamics
//
// rules.go: HeatBath, Metropolis and MetropolisEdges.
//
// Contract:
//   • Rules hold no state; one value may serve any number of chains and goroutines.
//   • Move never mutates the view.
//
// Complexity (per call):
//   • HeatBath, Metropolis: one Neighborhood call (O(4) torus, O(1) K_n).
//   • MetropolisEdges: one pass over the neighbour list (O(4) torus, O(n) K_n).

package dynamics

import "github.com/katalvlaran/spinmix/spin"

// HeatBath is Glauber heat-bath dynamics: the site is resampled unconditionally.
type HeatBath struct{}

// Name implements Rule.
func (HeatBath) Name() string { return "heat-bath" }

// Proposes implements Rule; heat-bath needs no candidate.
func (HeatBath) Proposes() bool { return false }

// Move returns P(site = Up) with outcomes Up/Down.
func (HeatBath) Move(v View, site int, _ spin.Spin, beta float64) Move {
	h := v.Neighborhood(site)
	return Move{P: PositiveProbability(beta, h.Sum()), Accept: spin.Up, Reject: spin.Down}
}

// Metropolis is single-spin Metropolis dynamics over the neighbour summary.
type Metropolis struct{}

// Name implements Rule.
func (Metropolis) Name() string { return "metropolis" }

// Proposes implements Rule.
func (Metropolis) Proposes() bool { return true }

// Move returns the acceptance of candidate with outcomes candidate/current.
func (Metropolis) Move(v View, site int, candidate spin.Spin, beta float64) Move {
	cur := v.At(site)
	h := v.Neighborhood(site)
	delta := h.Disagreeing(candidate) - h.Disagreeing(cur)
	return Move{P: Acceptance(beta, delta), Accept: candidate, Reject: cur}
}

// MetropolisEdges is Metropolis dynamics with the energy counted edge by edge.
type MetropolisEdges struct{}

// Name implements Rule.
func (MetropolisEdges) Name() string { return "metropolis-edges" }

// Proposes implements Rule.
func (MetropolisEdges) Proposes() bool { return true }

// Move walks every edge at site and counts the ones whose endpoints would
// disagree under the candidate and under the current spin.
func (MetropolisEdges) Move(v View, site int, candidate spin.Spin, beta float64) Move {
	cur := v.At(site)
	var after, before int
	v.EachNeighbor(site, func(nb int) {
		s := v.At(nb)
		if !spin.Agree(s, candidate) {
			after++
		}
		if !spin.Agree(s, cur) {
			before++
		}
	})
	return Move{P: Acceptance(beta, after-before), Accept: candidate, Reject: cur}
}
