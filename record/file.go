// SPDX-License-Identifier: MIT
// Package: spinmix/record
//
// file.go: text file sink, file naming and readers.

package record

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FileExt is the extension of result files.
const FileExt = ".txt"

// FileName builds a result file name from the run parameters:
//
//	<prefix>_<n>_<trials>_<low>_<high>_<step>_<unix-nanos>.txt
//
// The timestamp keeps repeated runs apart. The name is a key, not a format;
// Label is the only part read back.
func FileName(prefix string, n, trials int, low, high, step float64, at time.Time) string {
	g := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	return fmt.Sprintf("%s_%d_%d_%s_%s_%s_%d%s", prefix, n, trials, g(low), g(high), g(step), at.UnixNano(), FileExt)
}

// Label returns the series label of a result file. Legacy colon-separated
// names ("model:n:k:...") are cut at the first ':', FileName names
// ("model_n_k_...") at the first '_'. Anything else keeps its base name
// without extension.
func Label(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, ':'); i > 0 {
		return base[:i]
	}
	if i := strings.IndexByte(base, '_'); i > 0 {
		return base[:i]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileSink appends formatted records to a file. Not safe for concurrent use.
type FileSink struct {
	f    *os.File
	w    *bufio.Writer
	path string
}

// CreateFile opens path for appending, creating it and its directory if needed.
func CreateFile(path string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("CreateFile: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("CreateFile: %w", err)
	}
	return &FileSink{f: f, w: bufio.NewWriter(f), path: path}, nil
}

// Path returns the file path.
func (s *FileSink) Path() string { return s.path }

// Append writes one line and flushes it, so an interrupted run keeps every
// record appended so far.
func (s *FileSink) Append(r Record) error {
	if _, err := s.w.WriteString(Format(r)); err != nil {
		return err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return err
	}
	return s.w.Flush()
}

// Close flushes and closes the file.
func (s *FileSink) Close() error {
	if err := s.w.Flush(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}

// Read parses every record in r. Blank lines and lines starting with '#' are
// skipped. A bad line yields ErrMalformed with its 1-based line number.
func Read(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rec, err := Parse(text)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("Read: %w", ErrEmptyInput)
	}
	return out, nil
}

// ReadFile reads the records of the file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()
	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}
	return recs, nil
}
