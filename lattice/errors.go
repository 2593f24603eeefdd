// SPDX-License-Identifier: MIT
// Package: spinmix/lattice
//
// errors.go: sentinel errors for topology constructors.
//
// Callers branch with errors.Is; constructors attach method context with %w.

package lattice

import "errors"

// ErrTooFewSites indicates a side length below the constructor's minimum.
var ErrTooFewSites = errors.New("lattice: size too small")
