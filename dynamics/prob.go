// SPDX-License-Identifier: MIT
// Package: spinmix/dynamics
//
// prob.go: overflow-safe probability kernels.

package dynamics

import "math"

// PositiveProbability returns e^{βS}/(e^{βS}+e^{−βS}) = 1/(1+e^{−2βS}).
// The branch on the sign keeps the exponent non-positive, so the result is
// finite for any finite β·S.
func PositiveProbability(beta float64, sum int) float64 {
	x := 2 * beta * float64(sum)
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// Acceptance returns min(1, e^{−β·delta}) where delta is the change in the
// number of disagreeing neighbours.
func Acceptance(beta float64, delta int) float64 {
	x := -beta * float64(delta)
	if x >= 0 {
		return 1
	}
	return math.Exp(x)
}
