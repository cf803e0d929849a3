// SPDX-License-Identifier: MIT
// Package: iglsynth/builder
//
// helpers.go - vertex and edge emission shared by constructors.

package builder

import (
	"fmt"

	"github.com/iglsynth/iglsynth/core"
)

// addVertices inserts idFn(0..n-1) and returns the IDs in index order.
// An ID already present is a collision and fails with ErrConstructFailed.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if !g.AddVertex(core.NewVertex(ids[i])) {
			return nil, fmt.Errorf("%s: vertex %q already present: %w", method, ids[i], ErrConstructFailed)
		}
	}

	return ids, nil
}

// connect adds u -> v (and v -> u when cfg.symmetric).
func connect(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	if err := connectOne(method, g, cfg, u, v); err != nil {
		return err
	}
	if cfg.symmetric && u != v {
		return connectOne(method, g, cfg, v, u)
	}

	return nil
}

func connectOne(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	_, ok, err := g.Connect(u, v, cfg.edgeOptions()...)
	if err != nil {
		return fmt.Errorf("%s: edge %s->%s: %w: %w", method, u, v, err, ErrConstructFailed)
	}
	if !ok {
		return fmt.Errorf("%s: edge %s->%s rejected: %w", method, u, v, ErrConstructFailed)
	}

	return nil
}

// validateMin reports ErrTooFewVertices when got < minimum.
func validateMin(method string, got, minimum int) error {
	if got < minimum {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, minimum, ErrTooFewVertices)
	}

	return nil
}
