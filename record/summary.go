// SPDX-License-Identifier: MIT
// Package: spinmix/record
//
// summary.go: per-parameter aggregation of iteration counts.

package record

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Point aggregates the records sharing one parameter value.
type Point struct {
	Param float64
	Count int
	Mean  float64
	Min   uint64
	Max   uint64
	// StdDev is the sample standard deviation (0 when Count == 1).
	StdDev float64
}

// Series is the summary of one source, labelled for display.
type Series struct {
	Label  string
	Points []Point
}

// Summarize groups recs by exact parameter value and returns the points in
// increasing parameter order.
// Complexity: O(R + P log P) for R records and P distinct parameters.
func Summarize(recs []Record) []Point {
	type group struct {
		xs       []float64
		min, max uint64
	}
	groups := make(map[float64]*group)
	for _, r := range recs {
		g, ok := groups[r.Param]
		if !ok {
			g = &group{min: r.Iterations, max: r.Iterations}
			groups[r.Param] = g
		}
		g.xs = append(g.xs, float64(r.Iterations))
		g.min = min(g.min, r.Iterations)
		g.max = max(g.max, r.Iterations)
	}

	out := make([]Point, 0, len(groups))
	for p, g := range groups {
		pt := Point{Param: p, Count: len(g.xs), Min: g.min, Max: g.max}
		if len(g.xs) > 1 {
			pt.Mean, pt.StdDev = stat.MeanStdDev(g.xs, nil)
		} else {
			pt.Mean = g.xs[0]
		}
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Param < out[j].Param })
	return out
}

// SummarizeFiles reads each path and returns one Series per file, labelled by Label.
func SummarizeFiles(paths ...string) ([]Series, error) {
	out := make([]Series, 0, len(paths))
	for _, p := range paths {
		recs, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, Series{Label: Label(p), Points: Summarize(recs)})
	}
	return out, nil
}
