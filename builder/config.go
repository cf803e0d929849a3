// SPDX-License-Identifier: MIT
// Package: iglsynth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn      = DefaultIDFn ("0","1","2",...)
//   - rng       = nil (no randomness unless seeded)
//   - weightFn  = nil (edges carry weight 0)
//   - symmetric = false

package builder

import (
	"math/rand"

	"github.com/iglsynth/iglsynth/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	weightFn  func(*rand.Rand) float64
	symmetric bool
	label     string
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeOptions returns the core options of the next generated edge.
func (c builderConfig) edgeOptions() []core.EdgeOption {
	var opts []core.EdgeOption
	if c.weightFn != nil {
		opts = append(opts, core.WithWeight(c.weightFn(c.rng)))
	}
	if c.label != "" {
		opts = append(opts, core.WithLabel(c.label))
	}

	return opts
}
