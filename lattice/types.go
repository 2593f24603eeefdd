// SPDX-License-Identifier: MIT
// Package: spinmix/lattice
//
// types.go: Topology contract and the Neighborhood summary.

package lattice

import "github.com/katalvlaran/spinmix/spin"

// Kind identifies the topology family.
type Kind int

const (
	// KindTorus is the 2-D periodic grid with 4-neighbour adjacency.
	KindTorus Kind = iota
	// KindComplete is the complete graph K_n.
	KindComplete
)

// String returns the short lowercase name used in model names and file names.
func (k Kind) String() string {
	switch k {
	case KindTorus:
		return "torus"
	case KindComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Neighborhood summarises the neighbours of one site in a given state.
// For binary spins the pair (Degree, Up) determines every quantity the update
// rules need.
type Neighborhood struct {
	// Degree is the number of neighbours (4 on the torus, n−1 on K_n).
	Degree int
	// Up is how many of those neighbours are spin.Up.
	Up int
}

// Down returns the number of neighbours that are not Up.
func (h Neighborhood) Down() int { return h.Degree - h.Up }

// Sum returns the neighbour spin sum Σ s_j for ±1 spins.
func (h Neighborhood) Sum() int { return 2*h.Up - h.Degree }

// Agreeing returns how many neighbours carry label s.
func (h Neighborhood) Agreeing(s spin.Spin) int {
	switch s {
	case spin.Up:
		return h.Up
	case spin.Down:
		return h.Down()
	default:
		return 0
	}
}

// Disagreeing returns how many neighbours carry a label other than s.
func (h Neighborhood) Disagreeing(s spin.Spin) int {
	return h.Degree - h.Agreeing(s)
}

// Topology is the read-only interaction graph shared by both chains of a trial.
type Topology interface {
	// Kind reports the topology family.
	Kind() Kind
	// Side returns the constructor argument n (grid side or vertex count).
	Side() int
	// Size returns the number of sites (n² on the torus, n on K_n).
	Size() int
	// Coupling maps the swept parameter onto the inverse temperature used by the rules.
	Coupling(param float64) float64
	// Neighborhood summarises the neighbours of site in state st.
	Neighborhood(st *spin.State, site int) Neighborhood
	// EachNeighbor calls fn once per neighbour of site, self excluded.
	EachNeighbor(site int, fn func(nb int))
}
