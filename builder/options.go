// SPDX-License-Identifier: MIT
// Package: gasnet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// Option customizes a build by mutating builderConfig before any
// constructor runs.
type Option func(*builderConfig)

// WithFirstID sets the first node and edge ID. Panics on a negative id.
func WithFirstID(id int) Option {
	if id < 0 {
		panic("builder: WithFirstID(id<0)")
	}
	return func(c *builderConfig) {
		c.firstID = id
	}
}

// WithCompressorEvery turns every k-th edge (k, 2k, …) into a compressor.
// k == 0 means no compressors. Panics on a negative k.
func WithCompressorEvery(k int) Option {
	if k < 0 {
		panic("builder: WithCompressorEvery(k<0)")
	}
	return func(c *builderConfig) {
		c.compressorEvery = k
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithProfile initialises every attribute of the built network from p.
// Panics when a value of p is NaN.
func WithProfile(p Profile) Option {
	for _, v := range p.values() {
		if math.IsNaN(v) {
			panic("builder: WithProfile(NaN)")
		}
	}
	return func(c *builderConfig) {
		c.profile = &p
	}
}
