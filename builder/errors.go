// SPDX-License-Identifier: MIT
// Package: gasnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach method context
// with %w. Network validation errors (network.ErrConstruction and friends)
// pass through Build unchanged in kind.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that RandomSparse needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a profile that the
// network rejected.
var ErrConstructFailed = errors.New("builder: construction failed")
