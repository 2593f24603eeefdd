// SPDX-License-Identifier: MIT

// Package lattice supplies the two interaction graphs a coupled spin chain runs on.
//
// What:
//
//   - Torus(n): an n×n grid with periodic boundaries. Site (x,y) has exactly the
//     four neighbours (x±1 mod n, y) and (x, y±1 mod n). The adjacency table is
//     resolved once at construction.
//   - Complete(n): the complete graph K_n (Curie–Weiss, mean field). Neighbour
//     summaries come from the state's Up count instead of enumerating n−1 sites.
//
// Both implement Topology, which is immutable after construction and safe to
// share across trials and goroutines.
//
// Coupling strength:
//
//   - Torus uses the swept parameter β as is.
//   - Complete rescales the swept parameter α to α/n.
//
// Complexity:
//
//   - Torus: Neighborhood O(4), EachNeighbor O(4), memory O(4·n²).
//   - Complete: Neighborhood O(1), EachNeighbor O(n), memory O(1).
//
// Errors:
//
//   - ErrTooFewSites: the side length is below the constructor's minimum.
package lattice
