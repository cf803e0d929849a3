// SPDX-License-Identifier: MIT
// Package: iglsynth/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices); n = 2 gives the 2-cycle 0 -> 1 -> 0.
//   - Edges i -> (i+1) mod n for i = 0..n-1.
//   - With WithSymmetric and n = 2 the mirrored edges are parallel, so the graph
//     must be a multigraph.

package builder

import "github.com/iglsynth/iglsynth/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(methodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
