// SPDX-License-Identifier: MIT
// Package: iglsynth/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on nil functions.
//     Constructors themselves never panic.
//   - Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Nil is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG, making stochastic constructors reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the per-edge weight generator. It receives the (possibly nil) RNG.
// Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight gives every generated edge weight w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// WithSymmetric adds the reverse edge v -> u right after every generated u -> v.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}

// WithEdgeLabel sets the label of every generated edge, e.g. an action ID.
func WithEdgeLabel(label string) BuilderOption {
	return func(c *builderConfig) { c.label = label }
}
