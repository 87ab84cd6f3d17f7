// SPDX-License-Identifier: MIT
// Package: gasnet/builder
//
// impl_star.go - Star(n): a hub feeding n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first created node is the hub; edges hub → leaf in leaf order.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a hub with n-1 spokes.
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := d.addNodes(n)
		for _, leaf := range ids[1:] {
			d.addEdge(ids[0], leaf)
		}

		return nil
	}
}
