// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a *mat.Dense for use with gonum's linear algebra.
// gonum forbids empty matrices, so a degenerate m returns ErrEmpty.
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", m.r, m.c, ErrEmpty)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies a gonum matrix into a new Dense.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = src.At(i, j)
		}
	}

	return m, nil
}

// MulVec returns m·x. len(x) must equal Cols(); the result has Rows() entries.
// A degenerate m yields a zero vector of length Rows().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("MulVec: %w", ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, fmt.Errorf("MulVec: len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch)
	}
	out := make([]float64, m.r)
	if m.r == 0 || m.c == 0 {
		return out, nil
	}
	a := mat.NewDense(m.r, m.c, m.data)
	var y mat.VecDense
	y.MulVec(a, mat.NewVecDense(m.c, x))
	for i := range out {
		out[i] = y.AtVec(i)
	}

	return out, nil
}

// MulTransVec returns mᵀ·x. len(x) must equal Rows(); the result has Cols() entries.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) MulTransVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("MulTransVec: %w", ErrNilMatrix)
	}
	if len(x) != m.r {
		return nil, fmt.Errorf("MulTransVec: len(x)=%d, rows=%d: %w", len(x), m.r, ErrDimensionMismatch)
	}
	out := make([]float64, m.c)
	if m.r == 0 || m.c == 0 {
		return out, nil
	}
	a := mat.NewDense(m.r, m.c, m.data)
	var y mat.VecDense
	y.MulVec(a.T(), mat.NewVecDense(m.r, x))
	for j := range out {
		out[j] = y.AtVec(j)
	}

	return out, nil
}
