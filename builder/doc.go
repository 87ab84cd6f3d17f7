// SPDX-License-Identifier: MIT

// Package builder generates gas network fixtures from deterministic
// topology constructors.
//
// A build composes Constructor closures (Path, Ring, Star, Grid,
// RandomSparse) over a shared draft, then validates the result through
// network.New. Node and edge IDs are assigned consecutively from
// WithFirstID; constructors applied in sequence produce disjoint parts.
//
// Options:
//
//	WithFirstID(id)         first node and edge ID (default 1)
//	WithCompressorEvery(k)  every k-th edge becomes a compressor (default none)
//	WithSeed / WithRand     RNG for RandomSparse
//	WithProfile(p)          uniform attribute values, see Profile
//
// Option constructors panic on meaningless input. Constructors never panic;
// they return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
package builder
