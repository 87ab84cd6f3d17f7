// SPDX-License-Identifier: MIT
// Package: gasnet/builder
//
// impl_grid.go - Grid(rows, cols): a meshed distribution network.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is the node created at position r*cols+c (row-major).
//   • For each cell in row-major order, emit Right (r,c)→(r,c+1) then
//     Bottom (r,c)→(r+1,c) where the neighbour exists.
//
// Complexity:
//   • Time: O(rows*cols) nodes and edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols orthogonal mesh.
func Grid(rows, cols int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := d.addNodes(rows * cols)
		at := func(r, c int) int { return r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.addEdge(ids[at(r, c)], ids[at(r, c+1)])
				}
				if r+1 < rows {
					d.addEdge(ids[at(r, c)], ids[at(r+1, c)])
				}
			}
		}

		return nil
	}
}
