// SPDX-License-Identifier: MIT
// Package: spinmix/dynamics
//
// registry.go: lookup of rules by name.

package dynamics

import (
	"errors"
	"fmt"
)

// ErrUnknownRule indicates a rule name that is not registered.
var ErrUnknownRule = errors.New("dynamics: unknown rule")

// All returns every rule in a stable order.
func All() []Rule {
	return []Rule{HeatBath{}, Metropolis{}, MetropolisEdges{}}
}

// ByName returns the rule whose Name() equals name.
func ByName(name string) (Rule, error) {
	for _, r := range All() {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("ByName: %q: %w", name, ErrUnknownRule)
}
