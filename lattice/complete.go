// SPDX-License-Identifier: MIT
// Package: spinmix/lattice
//
// complete.go: the complete graph K_n in its mean-field (Curie–Weiss) form.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewSites).
//   • Every site neighbours all n−1 others; no adjacency is stored.
//   • Neighborhood derives the Up count of the other sites from st.Positive()
//     and the site's own spin, so it costs O(1) regardless of n.
//   • Coupling rescales the swept α to α/n.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/spinmix/spin"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// CompleteGraph is K_n. It holds only n.
type CompleteGraph struct {
	n int
}

// Complete returns K_n.
func Complete(n int) (*CompleteGraph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewSites)
	}
	return &CompleteGraph{n: n}, nil
}

// Kind implements Topology.
func (c *CompleteGraph) Kind() Kind { return KindComplete }

// Side returns n.
func (c *CompleteGraph) Side() int { return c.n }

// Size returns n.
func (c *CompleteGraph) Size() int { return c.n }

// Coupling returns α/n.
func (c *CompleteGraph) Coupling(param float64) float64 { return param / float64(c.n) }

// Neighborhood returns (n−1, Up count excluding site) without enumerating.
func (c *CompleteGraph) Neighborhood(st *spin.State, site int) Neighborhood {
	up := st.Positive()
	if st.At(site) == spin.Up {
		up--
	}
	return Neighborhood{Degree: c.n - 1, Up: up}
}

// EachNeighbor calls fn for every site other than site, in ascending order.
func (c *CompleteGraph) EachNeighbor(site int, fn func(nb int)) {
	for i := 0; i < c.n; i++ {
		if i != site {
			fn(i)
		}
	}
}
