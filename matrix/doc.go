// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major matrix used for graph incidence
// views, the oriented incidence builder, and a bridge to gonum for linear
// algebra on those views.
//
// Sign convention for BuildOriented: column j carries +1 in the row of its
// tail and −1 in the row of its head; a self-loop sums to a zero column.
// Rows follow the vertex order passed in, columns follow the arc order.
//
// Public accessors never panic on bad indices; they return sentinel errors
// (ErrOutOfRange, ErrNaNInf, ...) wrapped with the method and coordinates.
package matrix
