// SPDX-License-Identifier: MIT
// Package: spinmix/record
//
// record.go: Record, the Sink contract and the line codec.

package record

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMalformed indicates a line that is not a record.
	ErrMalformed = errors.New("record: malformed line")

	// ErrEmptyInput indicates an input with no records at all.
	ErrEmptyInput = errors.New("record: no records")
)

const methodParse = "Parse"

// Record is the outcome of one trial. It is never mutated once created.
type Record struct {
	Param      float64
	Iterations uint64
	Duration   time.Duration
}

// Sink accepts records one at a time. Callers serialise calls to Append.
type Sink interface {
	Append(Record) error
}

// Format renders r without a trailing newline.
func Format(r Record) string {
	var b strings.Builder
	b.Grow(48)
	b.WriteString(strconv.FormatFloat(r.Param, 'g', -1, 64))
	b.WriteString(", ")
	b.WriteString(strconv.FormatUint(r.Iterations, 10))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(r.Duration.Seconds(), 'f', 9, 64))
	return b.String()
}

// Parse reads one line in either the comma or the space layout.
func Parse(line string) (Record, error) {
	line = strings.TrimSpace(line)
	var fields []string
	if strings.Contains(line, ",") {
		fields = strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
	} else {
		fields = strings.Fields(line)
	}
	if len(fields) < 2 || len(fields) > 3 {
		return Record{}, fmt.Errorf("%s: %q: want 2 or 3 fields, got %d: %w", methodParse, line, len(fields), ErrMalformed)
	}

	param, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(param) || math.IsInf(param, 0) {
		return Record{}, fmt.Errorf("%s: param %q: %w", methodParse, fields[0], ErrMalformed)
	}
	iters, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%s: iterations %q: %w", methodParse, fields[1], ErrMalformed)
	}
	rec := Record{Param: param, Iterations: iters}
	if len(fields) == 3 {
		sec, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || sec < 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
			return Record{}, fmt.Errorf("%s: duration %q: %w", methodParse, fields[2], ErrMalformed)
		}
		rec.Duration = time.Duration(math.Round(sec * float64(time.Second)))
	}
	return rec, nil
}
