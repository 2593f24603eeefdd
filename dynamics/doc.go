// SPDX-License-Identifier: MIT

// Package dynamics implements the single-site update rules of a spin chain.
//
// Every rule is a pure function of one chain's local view: given the chosen
// site, the shared candidate spin and the inverse temperature β, it returns a
// Move: a probability P and the two outcomes. The caller draws one uniform
// r ∈ [0,1) per step and applies Move.Resolve(r) to both coupled chains.
//
// Rules:
//
//   - HeatBath: resample the site from its conditional law.
//     P(site = +1) = e^{βS} / (e^{βS} + e^{−βS}) with S the neighbour spin sum.
//   - Metropolis: shared uniform candidate c; accept with
//     min(1, e^{−β(D(c) − D(cur))}), D(x) = neighbours disagreeing with x.
//     Counts come from the topology's Neighborhood summary (O(1) on K_n).
//   - MetropolisEdges: same acceptance, but D is counted edge by edge through
//     spin.Agree while walking the neighbour list. This is the form that
//     generalises to q-label Potts models.
//
// Numerics: HeatBath uses the logistic identity 1/(1+e^{−2βS}) split on sign,
// Metropolis short-circuits to 1 when the exponent is non-negative, so neither
// overflows for large β·S.
package dynamics
