// SPDX-License-Identifier: MIT
// Package: spinmix/model
//
// model.go: Model descriptor, registry and topology construction.

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spinmix/dynamics"
	"github.com/katalvlaran/spinmix/lattice"
)

// ErrUnknownModel indicates a name with no registered Model.
var ErrUnknownModel = errors.New("model: unknown model")

const (
	prefixCurieWeiss = "curie-weiss"
	prefixTorus      = "torus"

	// ParamAlpha is the swept parameter on K_n.
	ParamAlpha = "alpha"
	// ParamBeta is the swept parameter on the torus.
	ParamBeta = "beta"

	// noteUnscaledMetropolis flags the K_n Metropolis models: their sweeps
	// are not comparable point for point with legacy results.
	noteUnscaledMetropolis = "alpha is divided by n; legacy Metropolis results swept unscaled beta"
)

// Defaults is a model's built-in sweep range (low and high inclusive).
type Defaults struct {
	Low, High, Step float64
}

// Model is an immutable experiment descriptor.
type Model struct {
	Name     string
	Kind     lattice.Kind
	Rule     dynamics.Rule
	Param    string
	// Coupling is the per-edge interaction the rule sees, in terms of Param.
	Coupling string
	Defaults Defaults
	// Note is shown next to the model in listings; usually empty.
	Note string
}

// Build constructs the model's topology for size n.
func (m Model) Build(n int) (lattice.Topology, error) {
	switch m.Kind {
	case lattice.KindTorus:
		return lattice.Torus(n)
	case lattice.KindComplete:
		return lattice.Complete(n)
	default:
		return nil, fmt.Errorf("Build: %s kind=%d: %w", m.Name, m.Kind, ErrUnknownModel)
	}
}

var (
	curieWeissDefaults = Defaults{Low: 0.01, High: 2, Step: 0.01}
	torusDefaults      = Defaults{Low: 0.01, High: 0.6, Step: 0.01}
)

// All returns every registered model: K_n models first, then torus models,
// each in dynamics.All order.
func All() []Model {
	rules := dynamics.All()
	out := make([]Model, 0, 2*len(rules))
	for _, r := range rules {
		m := Model{
			Name:     prefixCurieWeiss + "-" + r.Name(),
			Kind:     lattice.KindComplete,
			Rule:     r,
			Param:    ParamAlpha,
			Coupling: ParamAlpha + "/n",
			Defaults: curieWeissDefaults,
		}
		if r.Proposes() {
			m.Note = noteUnscaledMetropolis
		}
		out = append(out, m)
	}
	for _, r := range rules {
		out = append(out, Model{
			Name:     prefixTorus + "-" + r.Name(),
			Kind:     lattice.KindTorus,
			Rule:     r,
			Param:    ParamBeta,
			Coupling: ParamBeta,
			Defaults: torusDefaults,
		})
	}
	return out
}

// Lookup returns the model registered under name.
func Lookup(name string) (Model, error) {
	for _, m := range All() {
		if m.Name == name {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("Lookup: %q: %w", name, ErrUnknownModel)
}

// Names lists the registered model names in All order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, m := range all {
		names[i] = m.Name
	}
	return names
}
