// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w context);
// tests match them with errors.Is. Messages are prefixed with "matrix: ".

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates negative (or, for NewDense, zero) dimensions.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf indicates a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrUnknownVertex indicates an arc endpoint absent from the vertex order.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrDuplicateVertex indicates a vertex listed twice in the vertex order.
	ErrDuplicateVertex = errors.New("matrix: duplicate vertex id")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEmpty indicates an operation that needs at least one row and one column.
	ErrEmpty = errors.New("matrix: empty matrix")
)
