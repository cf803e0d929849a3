// SPDX-License-Identifier: MIT
// Package: iglsynth/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices); p in [0,1] (else ErrInvalidProbability).
//   - Requires an RNG from WithSeed/WithRand (else ErrNeedRandSource).
//   - Each ordered pair u != v is drawn independently with probability p,
//     visited row-major so a fixed seed gives a fixed graph.

package builder

import (
	"fmt"

	"github.com/iglsynth/iglsynth/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
)

// RandomSparse returns a Constructor for a directed Erdős-Rényi graph G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseNodes); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				if err = connectOne(methodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
