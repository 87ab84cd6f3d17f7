// SPDX-License-Identifier: MIT

package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasnet/model"
	"github.com/katalvlaran/gasnet/network"
)

func TestPressureDrops(t *testing.T) {
	n := newSupplyChain(t)

	got, err := model.PressureDrops(n, map[network.NodeID]float64{1: 9, 2: 4, 3: 8})
	require.NoError(t, err)
	require.Equal(t, map[network.EdgeID]float64{1: 5, 2: -4}, got)

	_, err = model.PressureDrops(n, map[network.NodeID]float64{1: 9})
	require.ErrorIs(t, err, model.ErrDimension)
	_, err = model.PressureDrops(n, map[network.NodeID]float64{1: 9, 2: 4, 7: 8})
	require.ErrorIs(t, err, model.ErrUnknownEntity)
	_, err = model.PressureDrops(nil, nil)
	require.ErrorIs(t, err, model.ErrNilNetwork)
}

func TestNodalBalance(t *testing.T) {
	n := newSupplyChain(t)

	// The balance of a feasible flow matches the injections of the program.
	got, err := model.NodalBalance(n, map[network.EdgeID]float64{1: 1.5, 2: 1.5})
	require.NoError(t, err)
	require.Equal(t, map[network.NodeID]float64{1: 1.5, 2: 0, 3: -1.5}, got)

	_, err = model.NodalBalance(n, map[network.EdgeID]float64{})
	require.ErrorIs(t, err, model.ErrDimension)
	_, err = model.NodalBalance(n, map[network.EdgeID]float64{1: 1, 5: 1})
	require.ErrorIs(t, err, model.ErrUnknownEntity)
	_, err = model.NodalBalance(nil, nil)
	require.ErrorIs(t, err, model.ErrNilNetwork)
}

func TestNodalBalance_NoEdges(t *testing.T) {
	n, err := network.New([]network.NodeID{1, 2}, nil, nil)
	require.NoError(t, err)

	got, err := model.NodalBalance(n, map[network.EdgeID]float64{})
	require.NoError(t, err)
	require.Equal(t, map[network.NodeID]float64{1: 0, 2: 0}, got)
}
