// SPDX-License-Identifier: MIT
// Package: spinmix/spin
//
// spin.go: site labels and the agreement predicate.

package spin

import "strconv"

// Spin is the label carried by one site.
type Spin int8

const (
	// Down is the negative Ising spin (−1).
	Down Spin = -1
	// Up is the positive Ising spin (+1).
	Up Spin = 1
)

// String renders Up/Down as "+"/"-" and any other label as its integer value.
func (s Spin) String() string {
	switch s {
	case Up:
		return "+"
	case Down:
		return "-"
	default:
		return strconv.Itoa(int(s))
	}
}

// Flip returns the opposite binary spin. Labels other than Up/Down are returned unchanged.
func (s Spin) Flip() Spin {
	switch s {
	case Up:
		return Down
	case Down:
		return Up
	default:
		return s
	}
}

// Agree reports whether two sites carry the same label.
// Rules compare neighbours only through Agree, never through the product a·b,
// which is what keeps the disagreement-count energy valid for q > 2 labels.
func Agree(a, b Spin) bool {
	return a == b
}

// FromCoin maps a fair coin outcome onto a binary spin: heads (true) → Down, tails → Up.
func FromCoin(heads bool) Spin {
	if heads {
		return Down
	}
	return Up
}
