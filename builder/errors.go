// SPDX-License-Identifier: MIT
// Package: iglsynth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w ("<Method>: ...: %w").
//   - Constructors never panic; option constructors panic on nil functions.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the graph rejected a generated vertex or edge
// (an ID collision with earlier constructors, a self-loop in a loop-free graph, ...).
var ErrConstructFailed = errors.New("builder: construction failed")
