// SPDX-License-Identifier: MIT

package network_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasnet/network"
)

type nodeAccessor struct {
	attr network.Attribute
	get  func(*network.Network) (map[network.NodeID]float64, error)
	set  func(*network.Network, map[network.NodeID]float64) error
}

type edgeAccessor struct {
	attr  network.Attribute
	get   func(*network.Network) (map[network.EdgeID]float64, error)
	set   func(*network.Network, map[network.EdgeID]float64) error
	scale float64
}

var nodeAccessors = []nodeAccessor{
	{network.MinimumPressureBounds, (*network.Network).MinimumPressureBounds, (*network.Network).SetMinimumPressureBounds},
	{network.MaximumPressureBounds, (*network.Network).MaximumPressureBounds, (*network.Network).SetMaximumPressureBounds},
	{network.MinimumNodalInjections, (*network.Network).MinimumNodalInjections, (*network.Network).SetMinimumNodalInjections},
	{network.MaximumNodalInjections, (*network.Network).MaximumNodalInjections, (*network.Network).SetMaximumNodalInjections},
	{network.ValueUnservedDemand, (*network.Network).ValueUnservedDemand, (*network.Network).SetValueUnservedDemand},
	{network.NodalDemands, (*network.Network).NodalDemands, (*network.Network).SetNodalDemands},
}

var edgeAccessors = []edgeAccessor{
	{network.FrictionCoefficients, (*network.Network).FrictionCoefficients, (*network.Network).SetFrictionCoefficients, 1},
	{network.MinimumPressureRatio, (*network.Network).MinimumPressureRatio, (*network.Network).SetMinimumPressureRatio, 1},
	{network.MaximumPressureRatio, (*network.Network).MaximumPressureRatio, (*network.Network).SetMaximumPressureRatio, 1},
	{network.ReferenceFlows, (*network.Network).ReferenceFlows, (*network.Network).SetReferenceFlows, 2},
}

func TestNodeAttributes_Lifecycle(t *testing.T) {
	for _, acc := range nodeAccessors {
		acc := acc
		t.Run(acc.attr.String(), func(t *testing.T) {
			t.Parallel()
			n := newLooped(t)

			_, err := acc.get(n)
			require.ErrorIs(t, err, network.ErrUninitialized)
			require.False(t, n.IsInitialized(acc.attr))

			// Wrong size: collection stays uninitialised.
			err = acc.set(n, map[network.NodeID]float64{1: 1})
			require.ErrorIs(t, err, network.ErrValidation)
			_, err = acc.get(n)
			require.ErrorIs(t, err, network.ErrUninitialized)

			first := nodeValues(n.Nodes(), func(id network.NodeID) float64 { return float64(id) * 10 })
			require.NoError(t, acc.set(n, first))
			require.True(t, n.IsInitialized(acc.attr))
			got, err := acc.get(n)
			require.NoError(t, err)
			require.Equal(t, first, got)

			// Second write replaces everything.
			second := nodeValues(n.Nodes(), func(id network.NodeID) float64 { return -float64(id) })
			require.NoError(t, acc.set(n, second))
			got, err = acc.get(n)
			require.NoError(t, err)
			require.Equal(t, second, got)
		})
	}
}

func TestEdgeAttributes_Lifecycle(t *testing.T) {
	for _, acc := range edgeAccessors {
		acc := acc
		t.Run(acc.attr.String(), func(t *testing.T) {
			t.Parallel()
			n := newLooped(t)

			_, err := acc.get(n)
			require.ErrorIs(t, err, network.ErrUninitialized)

			err = acc.set(n, map[network.EdgeID]float64{1: 1, 2: 2})
			require.ErrorIs(t, err, network.ErrValidation)
			_, err = acc.get(n)
			require.ErrorIs(t, err, network.ErrUninitialized)

			first := edgeValues(n.Edges(), func(id network.EdgeID) float64 { return float64(id) + 0.5 })
			require.NoError(t, acc.set(n, first))
			got, err := acc.get(n)
			require.NoError(t, err)
			for id, v := range first {
				require.Equal(t, acc.scale*v, got[id], "edge %d", id)
			}

			second := edgeValues(n.Edges(), func(network.EdgeID) float64 { return 3 })
			require.NoError(t, acc.set(n, second))
			got, err = acc.get(n)
			require.NoError(t, err)
			for id := range second {
				require.Equal(t, acc.scale*3, got[id], "edge %d", id)
			}
		})
	}
}

func TestReferenceFlows_Doubled(t *testing.T) {
	n := newPath(t)
	require.NoError(t, n.SetReferenceFlows(map[network.EdgeID]float64{1: 1.5, 2: -4}))

	got, err := n.ReferenceFlows()
	require.NoError(t, err)
	require.Equal(t, map[network.EdgeID]float64{1: 3, 2: -8}, got)

	// Reading again does not scale again.
	got, err = n.ReferenceFlows()
	require.NoError(t, err)
	require.Equal(t, map[network.EdgeID]float64{1: 3, 2: -8}, got)
}

func TestAttributes_RejectedWriteKeepsPreviousValues(t *testing.T) {
	n := newPath(t)
	valid := map[network.NodeID]float64{1: 1, 2: 2, 3: 3}
	require.NoError(t, n.SetNodalDemands(valid))

	tests := []struct {
		name string
		in   map[network.NodeID]float64
	}{
		{"nil", nil},
		{"too few", map[network.NodeID]float64{1: 5, 2: 5}},
		{"too many", map[network.NodeID]float64{1: 5, 2: 5, 3: 5, 4: 5}},
		{"unknown key", map[network.NodeID]float64{1: 5, 2: 5, 9: 5}},
		{"NaN", map[network.NodeID]float64{1: 5, 2: math.NaN(), 3: 5}},
	}
	for _, tc := range tests {
		err := n.SetNodalDemands(tc.in)
		require.ErrorIs(t, err, network.ErrValidation, tc.name)

		got, err := n.NodalDemands()
		require.NoError(t, err)
		require.Equal(t, valid, got, tc.name)
	}
}

func TestAttributes_ReturnedMapIsACopy(t *testing.T) {
	n := newPath(t)
	in := map[network.NodeID]float64{1: 1, 2: 2, 3: 3}
	require.NoError(t, n.SetMaximumPressureBounds(in))

	in[1] = 100
	got, err := n.MaximumPressureBounds()
	require.NoError(t, err)
	require.Equal(t, 1.0, got[1])

	got[2] = 100
	again, err := n.MaximumPressureBounds()
	require.NoError(t, err)
	require.Equal(t, 2.0, again[2])
}

func TestAttributes_EmptyDomain(t *testing.T) {
	n, err := network.New([]network.NodeID{1}, nil, nil)
	require.NoError(t, err)

	require.ErrorIs(t, n.SetFrictionCoefficients(nil), network.ErrValidation)
	require.NoError(t, n.SetFrictionCoefficients(map[network.EdgeID]float64{}))

	got, err := n.FrictionCoefficients()
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestCompressionCost(t *testing.T) {
	n := newLooped(t)

	_, err := n.CompressionCost()
	require.ErrorIs(t, err, network.ErrUninitialized)

	require.ErrorIs(t, n.SetCompressionCost(-1.0), network.ErrValidation)
	require.ErrorIs(t, n.SetCompressionCost(math.NaN()), network.ErrValidation)
	require.ErrorIs(t, n.SetCompressionCost(math.Inf(1)), network.ErrValidation)
	_, err = n.CompressionCost()
	require.ErrorIs(t, err, network.ErrUninitialized)

	require.NoError(t, n.SetCompressionCost(0))
	v, err := n.CompressionCost()
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	require.NoError(t, n.SetCompressionCost(2.5))
	v, err = n.CompressionCost()
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	require.True(t, n.IsInitialized(network.CompressionCost))
}

func TestUninitialized_Shrinks(t *testing.T) {
	n := newPath(t)
	require.Len(t, n.Uninitialized(), 11)

	require.NoError(t, n.SetCompressionCost(1))
	require.NoError(t, n.SetNodalDemands(map[network.NodeID]float64{1: 0, 2: 0, 3: 0}))

	left := n.Uninitialized()
	require.Len(t, left, 9)
	require.NotContains(t, left, network.CompressionCost)
	require.NotContains(t, left, network.NodalDemands)
	require.False(t, n.IsInitialized(network.Attribute(-1)))
}

func TestAttributes_ConcurrentAccess(t *testing.T) {
	n := newPath(t)
	a := map[network.NodeID]float64{1: 1, 2: 1, 3: 1}
	b := map[network.NodeID]float64{1: 2, 2: 2, 3: 2}
	require.NoError(t, n.SetMinimumPressureBounds(a))

	const rounds = 100
	var wg sync.WaitGroup
	errs := make(chan error, 2*rounds)
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			in := a
			if i%2 == 1 {
				in = b
			}
			errs <- n.SetMinimumPressureBounds(in)
		}(i)
		go func() {
			defer wg.Done()
			got, err := n.MinimumPressureBounds()
			if err == nil && got[1] != got[2] {
				err = network.ErrValidation // torn read
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
