// SPDX-License-Identifier: MIT
// Package: gasnet/builder
//
// impl_path.go - Path(n) and Ring(n): a pipeline and a closed loop.
//
// Contract:
//   • Path: n ≥ 2; edges i → i+1 for i = 0..n-2.
//   • Ring: n ≥ 3; the Path edges plus the closing edge n-1 → 0.
//   • Nodes are created in ascending order before any edge.

package builder

import "fmt"

const (
	methodPath   = "Path"
	methodRing   = "Ring"
	minPathNodes = 2
	minRingNodes = 3
)

// Path returns a Constructor for an n-node pipeline.
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := d.addNodes(n)
		for i := 0; i+1 < n; i++ {
			d.addEdge(ids[i], ids[i+1])
		}

		return nil
	}
}

// Ring returns a Constructor for an n-node loop.
func Ring(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}
		ids := d.addNodes(n)
		for i := 0; i < n; i++ {
			d.addEdge(ids[i], ids[(i+1)%n])
		}

		return nil
	}
}
