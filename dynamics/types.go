// SPDX-License-Identifier: MIT
// Package: spinmix/dynamics
//
// types.go: View, Move and the Rule contract.

package dynamics

import (
	"github.com/katalvlaran/spinmix/lattice"
	"github.com/katalvlaran/spinmix/spin"
)

// View is one chain's read access as seen by an update rule.
type View interface {
	// At returns the current spin at site.
	At(site int) spin.Spin
	// Neighborhood summarises the neighbours of site.
	Neighborhood(site int) lattice.Neighborhood
	// EachNeighbor calls fn once per neighbour of site.
	EachNeighbor(site int, fn func(nb int))
}

// Move is a rule's verdict for one chain: the site becomes Accept when the
// shared draw r satisfies r ≤ P, otherwise Reject.
type Move struct {
	P      float64
	Accept spin.Spin
	Reject spin.Spin
}

// Resolve applies the shared uniform draw r.
func (m Move) Resolve(r float64) spin.Spin {
	if r <= m.P {
		return m.Accept
	}
	return m.Reject
}

// Rule is a single-site update rule.
type Rule interface {
	// Name is the short identifier used in model names ("heat-bath", ...).
	Name() string
	// Proposes reports whether the rule needs a shared candidate spin per step.
	Proposes() bool
	// Move computes the verdict for site in v. candidate is ignored when
	// Proposes() is false.
	Move(v View, site int, candidate spin.Spin, beta float64) Move
}
