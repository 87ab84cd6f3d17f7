// SPDX-License-Identifier: MIT
// Package: gasnet/builder
//
// config.go - internal configuration, deterministic defaults and the draft
// topology constructors write into.
//
// Deterministic defaults:
//   • firstID         = 1    (IDs 1..n, matching hand-written fixtures)
//   • compressorEvery = 0    (all pipes)
//   • rng             = nil  (pure unless seeded)
//   • profile         = nil  (attributes left uninitialised)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gasnet/network"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	firstID         int
	compressorEvery int
	rng             *rand.Rand
	profile         *Profile
}

const defaultFirstID = 1

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{firstID: defaultFirstID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// draft is the topology under construction. IDs are handed out
// consecutively so that independent constructors never collide.
type draft struct {
	nodes       []network.NodeID
	edges       []network.Edge
	compressors []network.Edge
	nextNode    network.NodeID
	nextEdge    network.EdgeID
	every       int
}

func newDraft(cfg builderConfig) *draft {
	return &draft{
		nextNode: network.NodeID(cfg.firstID),
		nextEdge: network.EdgeID(cfg.firstID),
		every:    cfg.compressorEvery,
	}
}

// addNodes appends n fresh nodes and returns them in creation order.
func (d *draft) addNodes(n int) []network.NodeID {
	out := make([]network.NodeID, n)
	for i := range out {
		out[i] = d.nextNode
		d.nextNode++
	}
	d.nodes = append(d.nodes, out...)

	return out
}

// addEdge appends from→to. The k-th, 2k-th, … edge of the whole draft
// becomes a compressor when compressorEvery is k.
func (d *draft) addEdge(from, to network.NodeID) {
	e := network.Edge{ID: d.nextEdge, From: from, To: to}
	d.nextEdge++
	d.edges = append(d.edges, e)
	if d.every > 0 && len(d.edges)%d.every == 0 {
		d.compressors = append(d.compressors, e)
	}
}
