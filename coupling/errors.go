// SPDX-License-Identifier: MIT
// Package: spinmix/coupling
//
// errors.go: sentinel errors for the coupling engine.
//
// Error policy:
//   • Callers branch with errors.Is; messages carry method context via %w.
//   • Option constructors (WithX) panic on meaningless input; Run never panics.

package coupling

import "errors"

// ErrNilTopology indicates NewEngine received a nil topology.
var ErrNilTopology = errors.New("coupling: topology is nil")

// ErrNilRule indicates NewEngine received a nil rule.
var ErrNilRule = errors.New("coupling: rule is nil")

// ErrNotCoalesced indicates the step cap was reached before the chains met.
// The accompanying Result carries Coalesced == false and the steps taken.
var ErrNotCoalesced = errors.New("coupling: chains did not coalesce within the step cap")
