// SPDX-License-Identifier: MIT

// Package sweep drives a coupling engine across a parameter range.
//
// For each parameter p = Low, Low+Step, ... while p ≤ High, the Controller runs
// exactly k trials and hands each finished trial to a record.Sink as soon as it
// completes. Points are visited strictly in increasing order; the next point
// starts only after every trial of the current one has finished.
//
// The step is accumulated with p += Step, without snapping to a grid, so the
// last point of long ranges may fall just below High or be dropped when the
// accumulated value overshoots it.
//
// Parallelism:
//
// With WithWorkers(w > 1) the trials of one point run concurrently, at most w at
// a time. Every trial draws from its own RNG, derived from the controller seed
// and the trial's global index, so the multiset of results does not depend on
// the worker count; only the order in which records reach the sink does.
// Sink.Append is always called from one goroutine at a time.
//
// Errors:
//
//   - ErrBadStep: step is not a finite positive number or vanishes at the
//     magnitude of the range.
//   - ErrEmptyRange: non-finite bounds or Low > High.
//   - ErrBadTrials: fewer than one trial per point.
//   - ErrNilRunner, ErrNilSink: missing collaborators.
//
// Trials stopped by the engine's step cap (coupling.ErrNotCoalesced) are not
// sent to the sink; they are counted in Summary.Capped and reported to the
// Observer.
package sweep
