// SPDX-License-Identifier: MIT
// Package: spinmix/sweep
//
// rng.go: per-trial random streams.
//
// Every trial owns a *rand.Rand built from (seed, stream) where stream is the
// trial's global index in the sweep. Streams never share state, so trials can
// run on any goroutine in any order and still see the same randomness.

package sweep

import "math/rand"

// defaultSeed replaces a zero seed.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG returns the stream for trial number stream under seed.
func trialRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}
