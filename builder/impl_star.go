// SPDX-License-Identifier: MIT
// Package: iglsynth/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n >= 2 total vertices (else ErrTooFewVertices).
//   - The hub has ID "Center"; the n-1 leaves use idFn(0..n-2).
//   - Edges Center -> leaf in leaf index order.

package builder

import (
	"fmt"

	"github.com/iglsynth/iglsynth/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// StarCenterID is the hub vertex ID used by Star.
	StarCenterID = "Center"
)

// Star returns a Constructor that builds an out-star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if !g.AddVertex(core.NewVertex(StarCenterID)) {
			return fmt.Errorf("%s: vertex %q already present: %w", methodStar, StarCenterID, ErrConstructFailed)
		}
		leaves, err := addVertices(methodStar, g, cfg, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = connect(methodStar, g, cfg, StarCenterID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
