// SPDX-License-Identifier: MIT
// Package: spinmix/sweep
//
// errors.go: sentinel errors for range validation and controller setup.

package sweep

import "errors"

var (
	// ErrBadStep indicates a step that is not finite and positive, or too small
	// to advance the parameter.
	ErrBadStep = errors.New("sweep: invalid step")

	// ErrEmptyRange indicates non-finite bounds or Low > High.
	ErrEmptyRange = errors.New("sweep: empty range")

	// ErrBadTrials indicates trials per point < 1.
	ErrBadTrials = errors.New("sweep: trials per point must be ≥ 1")

	// ErrNilRunner indicates a nil engine passed to NewController.
	ErrNilRunner = errors.New("sweep: nil runner")

	// ErrNilSink indicates a nil record sink passed to Run.
	ErrNilSink = errors.New("sweep: nil sink")
)
