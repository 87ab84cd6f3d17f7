// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/gasnet/network"
)

// PressureDrops returns Aᵀ·π for a candidate squared-pressure vector: for
// every edge, π_tail − π_head. pi must hold one value per node.
//
// Errors: ErrNilNetwork, ErrDimension, ErrUnknownEntity.
func PressureDrops(net *network.Network, pi map[network.NodeID]float64) (map[network.EdgeID]float64, error) {
	if net == nil {
		return nil, fmt.Errorf("PressureDrops: %w", ErrNilNetwork)
	}
	nodes := net.Nodes()
	if len(pi) != len(nodes) {
		return nil, fmt.Errorf("PressureDrops: got %d values, want %d: %w", len(pi), len(nodes), ErrDimension)
	}
	x := make([]float64, len(nodes))
	for i, n := range nodes {
		v, ok := pi[n]
		if !ok {
			return nil, fmt.Errorf("PressureDrops: node %d: %w", n, ErrUnknownEntity)
		}
		x[i] = v
	}

	y, err := net.IncidenceMatrix().MulTransVec(x)
	if err != nil {
		return nil, fmt.Errorf("PressureDrops: %w", err)
	}
	edges := net.Edges()
	out := make(map[network.EdgeID]float64, len(edges))
	for j, e := range edges {
		out[e.ID] = y[j]
	}

	return out, nil
}

// NodalBalance returns A·φ for a candidate flow vector: for every node, its
// net outflow, which is the injection ψ the injection rows require.
// phi must hold one value per edge.
//
// Errors: ErrNilNetwork, ErrDimension, ErrUnknownEntity.
func NodalBalance(net *network.Network, phi map[network.EdgeID]float64) (map[network.NodeID]float64, error) {
	if net == nil {
		return nil, fmt.Errorf("NodalBalance: %w", ErrNilNetwork)
	}
	edges := net.Edges()
	if len(phi) != len(edges) {
		return nil, fmt.Errorf("NodalBalance: got %d values, want %d: %w", len(phi), len(edges), ErrDimension)
	}
	x := make([]float64, len(edges))
	for j, e := range edges {
		v, ok := phi[e.ID]
		if !ok {
			return nil, fmt.Errorf("NodalBalance: edge %d: %w", e.ID, ErrUnknownEntity)
		}
		x[j] = v
	}

	y, err := net.IncidenceMatrix().MulVec(x)
	if err != nil {
		return nil, fmt.Errorf("NodalBalance: %w", err)
	}
	nodes := net.Nodes()
	out := make(map[network.NodeID]float64, len(nodes))
	for i, n := range nodes {
		out[n] = y[i]
	}

	return out, nil
}
