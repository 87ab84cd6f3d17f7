// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasnet/matrix"
)

func TestNewDense_Shape(t *testing.T) {
	_, err := matrix.NewDense(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, m.ToRows())
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, -1))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -1.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDense_RowColClone(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 99
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	cp := m.Clone()
	require.True(t, matrix.Equal(m, cp))
	require.NoError(t, cp.Set(0, 0, 7))
	require.False(t, matrix.Equal(m, cp))
}

func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {-1, 0.5}})
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[-1, 0.5]\n", m.String())
}

func TestEqual_Nil(t *testing.T) {
	m, _ := matrix.NewDense(1, 1)
	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(m, nil))
}
