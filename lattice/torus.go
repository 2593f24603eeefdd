// SPDX-License-Identifier: MIT
// Package: spinmix/lattice
//
// torus.go: n×n grid with periodic boundaries and 4-neighbour adjacency.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewSites); at n = 1 every neighbour would be the site itself.
//   • Site index is row-major: idx = y·n + x.
//   • Neighbour order per site is fixed: (x+1,y), (x−1,y), (x,y+1), (x,y−1).
//     At n = 2 the ± neighbours coincide and appear twice, as on any 2-periodic grid.
//
// Complexity:
//   • Construction: O(n²) time and memory for the resolved adjacency table.
//   • Neighborhood / EachNeighbor: O(4).

package lattice

import (
	"fmt"

	"github.com/katalvlaran/spinmix/spin"
)

const (
	methodTorus  = "Torus"
	minTorusSide = 2
	torusDegree  = 4
)

// torusOffsets are the four orthogonal shifts, in the order neighbours are reported.
var torusOffsets = [torusDegree][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// TorusLattice is the periodic n×n grid. It is immutable once built.
type TorusLattice struct {
	n   int
	adj []int32 // adj[4*idx+k] is the k-th neighbour of idx
}

// Torus builds the n×n periodic grid and resolves its adjacency table.
func Torus(n int) (*TorusLattice, error) {
	if n < minTorusSide {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodTorus, n, minTorusSide, ErrTooFewSites)
	}
	t := &TorusLattice{n: n, adj: make([]int32, torusDegree*n*n)}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := t.Index(x, y)
			for k, d := range torusOffsets {
				t.adj[torusDegree*idx+k] = int32(t.Index(wrap(x+d[0], n), wrap(y+d[1], n)))
			}
		}
	}
	return t, nil
}

// wrap reduces v into [0,n) for v in [−n, 2n).
func wrap(v, n int) int {
	return (v%n + n) % n
}

// Kind implements Topology.
func (t *TorusLattice) Kind() Kind { return KindTorus }

// Side returns n.
func (t *TorusLattice) Side() int { return t.n }

// Size returns n².
func (t *TorusLattice) Size() int { return t.n * t.n }

// Coupling returns param unchanged: the torus sweeps β directly.
func (t *TorusLattice) Coupling(param float64) float64 { return param }

// Index maps (x,y) to the row-major site index y·n + x.
func (t *TorusLattice) Index(x, y int) int { return y*t.n + x }

// Coordinate converts a row-major index back to (x,y).
func (t *TorusLattice) Coordinate(idx int) (x, y int) {
	return idx % t.n, idx / t.n
}

// Neighbors returns the four neighbour indices of idx in the fixed offset order.
func (t *TorusLattice) Neighbors(idx int) [torusDegree]int {
	var out [torusDegree]int
	base := torusDegree * idx
	for k := range out {
		out[k] = int(t.adj[base+k])
	}
	return out
}

// Neighborhood counts Up spins among the four neighbours of site.
func (t *TorusLattice) Neighborhood(st *spin.State, site int) Neighborhood {
	base := torusDegree * site
	up := 0
	for k := 0; k < torusDegree; k++ {
		if st.At(int(t.adj[base+k])) == spin.Up {
			up++
		}
	}
	return Neighborhood{Degree: torusDegree, Up: up}
}

// EachNeighbor calls fn for each of the four neighbours of site.
func (t *TorusLattice) EachNeighbor(site int, fn func(nb int)) {
	base := torusDegree * site
	for k := 0; k < torusDegree; k++ {
		fn(int(t.adj[base+k]))
	}
}
