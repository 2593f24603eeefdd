// SPDX-License-Identifier: MIT
// Package: spinmix/spin
//
// state.go: SpinState with an incrementally maintained Up count.
//
// Contract:
//   • Every mutation goes through Set or Reset; the spins slice is never exposed.
//   • Set updates the site value and the Up count together in O(1).
//   • Indices are not range-checked beyond the slice bounds check (callers draw
//     sites from the topology that sized the state).

package spin

// State is a configuration of spins over sites 0..Len()-1.
type State struct {
	spins    []Spin
	positive int
}

// New returns a state of n sites, every site set to fill. n < 0 is treated as 0.
// Complexity: O(n).
func New(n int, fill Spin) *State {
	if n < 0 {
		n = 0
	}
	s := &State{spins: make([]Spin, n)}
	s.Reset(fill)
	return s
}

// Reset sets every site to fill and recomputes the Up count.
// Complexity: O(n).
func (s *State) Reset(fill Spin) {
	for i := range s.spins {
		s.spins[i] = fill
	}
	if fill == Up {
		s.positive = len(s.spins)
	} else {
		s.positive = 0
	}
}

// Len returns the number of sites.
func (s *State) Len() int { return len(s.spins) }

// At returns the spin at site i.
func (s *State) At(i int) Spin { return s.spins[i] }

// Positive returns the number of sites currently Up.
func (s *State) Positive() int { return s.positive }

// Negative returns the number of sites that are not Up.
func (s *State) Negative() int { return len(s.spins) - s.positive }

// Magnetization returns Positive() − Negative().
func (s *State) Magnetization() int { return 2*s.positive - len(s.spins) }

// Set writes v at site i and returns the previous value.
// The Up count is adjusted in the same call so the two never drift apart.
// Complexity: O(1).
func (s *State) Set(i int, v Spin) Spin {
	prev := s.spins[i]
	if prev == v {
		return prev
	}
	if prev == Up {
		s.positive--
	}
	if v == Up {
		s.positive++
	}
	s.spins[i] = v
	return prev
}

// Equal reports whether both states have the same length and agree at every site.
// Complexity: O(n).
func (s *State) Equal(o *State) bool {
	return s.Differing(o) == 0 && len(s.spins) == len(o.spins)
}

// Differing counts the sites where s and o disagree. Sites beyond the shorter
// state count as differing.
// Complexity: O(n).
func (s *State) Differing(o *State) int {
	n, m := len(s.spins), len(o.spins)
	if m < n {
		n, m = m, n
	}
	d := m - n
	for i := 0; i < n; i++ {
		if !Agree(s.spins[i], o.spins[i]) {
			d++
		}
	}
	return d
}

// Snapshot returns a copy of the current spins.
func (s *State) Snapshot() []Spin {
	out := make([]Spin, len(s.spins))
	copy(out, s.spins)
	return out
}
