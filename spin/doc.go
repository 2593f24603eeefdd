// SPDX-License-Identifier: MIT

// Package spin holds the per-site configuration of a discrete spin system.
//
// What:
//
//   - Spin is a site label. The binary Ising case uses Up (+1) and Down (−1).
//   - State is a mutable configuration over a fixed index set 0..n-1 that keeps
//     the global Up count in step with every write.
//   - Agree is the only comparison the update rules rely on, so the same rules
//     carry over to q-label Potts configurations.
//
// Invariant:
//
//	state.Positive() == |{ i : state.At(i) == Up }| after every Set.
//
// Complexity:
//
//   - At, Set, Positive: O(1).
//   - New, Reset, Equal, Differing: O(n).
//
// State is not safe for concurrent mutation; every coupled trial owns its own pair.
package spin
