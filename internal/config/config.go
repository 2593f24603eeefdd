// SPDX-License-Identifier: MIT

// Package config loads spinmix run files.
//
// A run file is YAML; every key is optional and falls back to Default():
//
//	model: torus-heat-bath
//	n: 32
//	trials: 5
//	range: {low: 0.3, high: 0.5, step: 0.01}
//	seed: 42
//	workers: 4
//	max_steps: 0
//	criterion: sitewise
//	progress_interval: 10s
//	output: {dir: results, sink: file, sqlite_path: results/spinmix.db}
//	log: {level: info, json: false, dir: ""}
//	metrics: {addr: ":9090"}
//
// Unknown keys are rejected. Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spinmix/coupling"
	"github.com/katalvlaran/spinmix/internal/logging"
	"github.com/katalvlaran/spinmix/model"
	"github.com/katalvlaran/spinmix/sweep"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

const (
	SinkFile   = "file"
	SinkSQLite = "sqlite"
)

// Output selects where records go.
type Output struct {
	Dir        string `yaml:"dir"`
	Sink       string `yaml:"sink"`
	SQLitePath string `yaml:"sqlite_path"`
}

// Log mirrors logging.Config in file form.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	Dir   string `yaml:"dir"`
	// Quiet silences stderr; a Dir still receives every entry.
	Quiet bool `yaml:"quiet"`
}

// Metrics configures the Prometheus endpoint; an empty Addr disables it.
type Metrics struct {
	Addr string `yaml:"addr"`
}

// Config is one run's settings.
type Config struct {
	Model            string        `yaml:"model"`
	N                int           `yaml:"n"`
	Trials           int           `yaml:"trials"`
	Range            *sweep.Range  `yaml:"range,omitempty"`
	Seed             int64         `yaml:"seed"`
	Workers          int           `yaml:"workers"`
	MaxSteps         uint64        `yaml:"max_steps"`
	Criterion        string        `yaml:"criterion"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
	Output           Output        `yaml:"output"`
	Log              Log           `yaml:"log"`
	Metrics          Metrics       `yaml:"metrics"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Trials:           1,
		Workers:          1,
		Criterion:        coupling.Sitewise.String(),
		ProgressInterval: 10 * time.Second,
		Output: Output{
			Dir:        "results",
			Sink:       SinkFile,
			SQLitePath: "results/spinmix.db",
		},
		Log: Log{Level: logging.LevelInfo.String()},
	}
}

// Load reads path over Default() and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every set field.
func (c Config) Validate() error {
	if c.Model != "" {
		if _, err := model.Lookup(c.Model); err != nil {
			return fmt.Errorf("config: model: %w: %w", ErrInvalid, err)
		}
	}
	if c.N < 0 {
		return fmt.Errorf("config: n=%d: %w", c.N, ErrInvalid)
	}
	if c.Trials < 1 {
		return fmt.Errorf("config: trials=%d: %w", c.Trials, ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers=%d: %w", c.Workers, ErrInvalid)
	}
	if _, ok := coupling.ParseCriterion(c.Criterion); !ok {
		return fmt.Errorf("config: criterion=%q: %w", c.Criterion, ErrInvalid)
	}
	if c.ProgressInterval < 0 {
		return fmt.Errorf("config: progress_interval=%s: %w", c.ProgressInterval, ErrInvalid)
	}
	if c.Range != nil {
		if err := c.Range.Validate(); err != nil {
			return fmt.Errorf("config: range: %w: %w", ErrInvalid, err)
		}
	}
	switch c.Output.Sink {
	case SinkFile, SinkSQLite:
	default:
		return fmt.Errorf("config: output.sink=%q: %w", c.Output.Sink, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w: %w", ErrInvalid, err)
	}
	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return buf.Bytes(), nil
}
