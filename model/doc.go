// SPDX-License-Identifier: MIT

// Package model names the runnable experiments: a topology family, an update
// rule, the name of the swept parameter and its default range.
//
// Six models are registered:
//
//	curie-weiss-heat-bath         K_n, heat-bath,         α ∈ [0.01, 2] step 0.01
//	curie-weiss-metropolis        K_n, Metropolis,        α ∈ [0.01, 2] step 0.01
//	curie-weiss-metropolis-edges  K_n, edge Metropolis,   α ∈ [0.01, 2] step 0.01
//	torus-heat-bath               n×n, heat-bath,         β ∈ [0.01, 0.6] step 0.01
//	torus-metropolis              n×n, Metropolis,        β ∈ [0.01, 0.6] step 0.01
//	torus-metropolis-edges        n×n, edge Metropolis,   β ∈ [0.01, 0.6] step 0.01
//
// On K_n the swept α is divided by n before it reaches the rule (see
// lattice.CompleteGraph.Coupling); on the torus β is used directly.
package model
