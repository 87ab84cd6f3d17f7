// SPDX-License-Identifier: MIT
// Package network_test contains fixtures shared by the network tests.

package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasnet/network"
)

// pathNodes / pathEdges describe 1 → 2 → 3.
var (
	pathNodes = []network.NodeID{1, 2, 3}
	pathEdges = []network.Edge{
		{ID: 1, From: 1, To: 2},
		{ID: 2, From: 2, To: 3},
	}
)

// newPath returns the 3-node path network without compressors.
func newPath(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.New(pathNodes, pathEdges, nil)
	require.NoError(t, err)

	return n
}

// newLooped returns a 4-node network with a compressor in the middle:
//
//	1 -p1-> 2 =c2=> 3 -p3-> 4, plus pipe 4 -p4-> 1
func newLooped(t *testing.T) *network.Network {
	t.Helper()
	edges := []network.Edge{
		{ID: 1, From: 1, To: 2},
		{ID: 2, From: 2, To: 3},
		{ID: 3, From: 3, To: 4},
		{ID: 4, From: 4, To: 1},
	}
	n, err := network.New([]network.NodeID{1, 2, 3, 4}, edges, []network.Edge{edges[1]})
	require.NoError(t, err)

	return n
}

func nodeValues(ids []network.NodeID, f func(network.NodeID) float64) map[network.NodeID]float64 {
	out := make(map[network.NodeID]float64, len(ids))
	for _, id := range ids {
		out[id] = f(id)
	}

	return out
}

func edgeValues(edges []network.Edge, f func(network.EdgeID) float64) map[network.EdgeID]float64 {
	out := make(map[network.EdgeID]float64, len(edges))
	for _, e := range edges {
		out[e.ID] = f(e.ID)
	}

	return out
}

func edgeIDs(edges []network.Edge) []network.EdgeID {
	out := make([]network.EdgeID, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}
