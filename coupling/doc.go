// SPDX-License-Identifier: MIT

// Package coupling estimates mixing times by running two coupled chains until
// they coalesce.
//
// What:
//
//   - Engine owns a Topology and a Rule. Each Run starts a fresh trial with
//     X = all Up and Y = all Down and drives both chains with one shared random
//     site, one shared candidate (Metropolis rules) and one shared uniform r per step.
//   - The difference counter (sites where X and Y disagree) is adjusted from the
//     chosen site only, so one step costs what one rule evaluation costs.
//   - Run returns the number of steps to coalescence and the elapsed time.
//
// States:
//
//	RUNNING (counter > 0) ──step──▶ RUNNING
//	RUNNING ──counter hits 0──▶ COALESCED (terminal)
//
// Criteria:
//
//   - Sitewise (default): X and Y identical at every site.
//   - Magnetization: X and Y have the same number of Up sites. On K_n this is
//     coalescence of the magnetization chain, which is what the mean-field
//     heat-bath experiments track.
//
// Termination:
//
//	The loop has no cap by default; finite irreducible Glauber/Metropolis chains
//	coalesce almost surely. WithMaxSteps sets a cap, after which Run returns a
//	Result with Coalesced == false together with ErrNotCoalesced. The context is
//	polled every 4096 steps.
//
// Concurrency:
//
//	An Engine may run trials from several goroutines through RunWith, provided
//	every goroutine brings its own *rand.Rand. Run uses the Engine's own RNG and
//	is not safe for concurrent use.
package coupling
