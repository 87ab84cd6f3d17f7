// SPDX-License-Identifier: MIT
// Package: gasnet/builder
//
// impl_random_sparse.go - RandomSparse(n, p): an Erdős–Rényi-like network.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability,
//     NaN included).
//   • cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic without an RNG.
//   • Trials run over pairs i < j in (i asc, j asc) order; a hit emits i → j.
//
// Complexity:
//   • Time: O(n²) Bernoulli trials.
//
// Determinism:
//   • Fixed trial order ⇒ identical networks for a fixed seed.

package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each forward pair with
// independent probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := d.addNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var hit bool
				if cfg.rng == nil {
					hit = p == probMax
				} else {
					hit = cfg.rng.Float64() < p
				}
				if hit {
					d.addEdge(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
