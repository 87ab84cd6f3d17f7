// SPDX-License-Identifier: MIT
// Package matrix - oriented incidence builder (dense) with strict invariants.
//
// Contract:
//   1) Rows follow the vertex order exactly as given; duplicates are rejected.
//   2) Columns follow the arc order exactly as given; parallel arcs keep their own column.
//   3) Column j: +1 at the tail row, −1 at the head row. A self-loop sums to 0.
//   4) Unknown endpoints are rejected before any allocation of the dense buffer.
//
// Complexity:
//   - BuildOriented: O(|V| + |A|) for indexing plus O(|V|·|A|) for the dense buffer.

package matrix

import "fmt"

// Incidence marks.
const (
	tailMark = +1.0 // edge leaves the vertex
	headMark = -1.0 // edge enters the vertex
)

// Arc is a directed column definition for BuildOriented.
type Arc[V comparable] struct {
	Tail V
	Head V
}

// BuildOriented returns the |vertices|×|arcs| oriented incidence matrix.
// Either dimension may be zero.
//
// Errors: ErrDuplicateVertex, ErrUnknownVertex (wrapped with the arc index).
func BuildOriented[V comparable](vertices []V, arcs []Arc[V]) (*Dense, error) {
	idx := make(map[V]int, len(vertices))
	for i, v := range vertices {
		if _, dup := idx[v]; dup {
			return nil, fmt.Errorf("BuildOriented: vertex %v at row %d: %w", v, i, ErrDuplicateVertex)
		}
		idx[v] = i
	}

	// Resolve every endpoint first so a failure allocates nothing large.
	rows := make([][2]int, len(arcs))
	for j, a := range arcs {
		t, ok := idx[a.Tail]
		if !ok {
			return nil, fmt.Errorf("BuildOriented: arc %d tail %v: %w", j, a.Tail, ErrUnknownVertex)
		}
		h, ok := idx[a.Head]
		if !ok {
			return nil, fmt.Errorf("BuildOriented: arc %d head %v: %w", j, a.Head, ErrUnknownVertex)
		}
		rows[j] = [2]int{t, h}
	}

	m, err := newDenseZeroOK(len(vertices), len(arcs))
	if err != nil {
		return nil, fmt.Errorf("BuildOriented: %w", err)
	}
	for j, th := range rows {
		m.add(th[0], j, tailMark)
		m.add(th[1], j, headMark)
	}

	return m, nil
}
