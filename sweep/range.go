// SPDX-License-Identifier: MIT
// Package: spinmix/sweep
//
// range.go: inclusive parameter ranges and their enumeration.

package sweep

import (
	"fmt"
	"math"
)

const (
	methodValidate = "Validate"
	methodPoints   = "Points"

	// maxPoints bounds a single enumeration.
	maxPoints = 10_000_000
)

// Range is the inclusive sweep interval [Low, High] walked by Step.
type Range struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
	Step float64 `yaml:"step"`
}

// Validate checks that the range can be enumerated.
func (r Range) Validate() error {
	if math.IsNaN(r.Step) || math.IsInf(r.Step, 0) || r.Step <= 0 {
		return fmt.Errorf("%s: step=%g: %w", methodValidate, r.Step, ErrBadStep)
	}
	if math.IsNaN(r.Low) || math.IsNaN(r.High) || math.IsInf(r.Low, 0) || math.IsInf(r.High, 0) {
		return fmt.Errorf("%s: [%g, %g]: %w", methodValidate, r.Low, r.High, ErrEmptyRange)
	}
	if r.Low > r.High {
		return fmt.Errorf("%s: low=%g > high=%g: %w", methodValidate, r.Low, r.High, ErrEmptyRange)
	}
	for _, end := range [2]float64{r.Low, r.High} {
		if end+r.Step == end {
			return fmt.Errorf("%s: step=%g vanishes at %g: %w", methodValidate, r.Step, end, ErrBadStep)
		}
	}
	if (r.High-r.Low)/r.Step >= maxPoints {
		return fmt.Errorf("%s: step=%g yields more than %d points: %w", methodValidate, r.Step, maxPoints, ErrBadStep)
	}
	return nil
}

// Points enumerates Low, Low+Step, ... while the running value is ≤ High.
// The running value is accumulated, not recomputed as Low+i·Step.
// Complexity: O((High−Low)/Step).
func (r Range) Points() ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	pts := make([]float64, 0, int((r.High-r.Low)/r.Step)+1)
	for p := r.Low; p <= r.High; p += r.Step {
		pts = append(pts, p)
		if p+r.Step == p {
			return nil, fmt.Errorf("%s: step=%g vanishes at %g: %w", methodPoints, r.Step, p, ErrBadStep)
		}
	}
	return pts, nil
}
