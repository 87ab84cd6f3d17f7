// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasnet/builder"
	"github.com/katalvlaran/gasnet/model"
	"github.com/katalvlaran/gasnet/network"
)

func TestBuild_Topologies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		nodes int
		edges []network.Edge
	}{
		{"Path(3)", builder.Path(3), 3,
			[]network.Edge{{ID: 1, From: 1, To: 2}, {ID: 2, From: 2, To: 3}}},
		{"Ring(3)", builder.Ring(3), 3,
			[]network.Edge{{ID: 1, From: 1, To: 2}, {ID: 2, From: 2, To: 3}, {ID: 3, From: 3, To: 1}}},
		{"Star(4)", builder.Star(4), 4,
			[]network.Edge{{ID: 1, From: 1, To: 2}, {ID: 2, From: 1, To: 3}, {ID: 3, From: 1, To: 4}}},
		{"Grid(2,2)", builder.Grid(2, 2), 4,
			[]network.Edge{{ID: 1, From: 1, To: 2}, {ID: 2, From: 1, To: 3}, {ID: 3, From: 2, To: 4}, {ID: 4, From: 3, To: 4}}},
		{"Grid(1,1)", builder.Grid(1, 1), 1, nil},
		{"RandomSparse(3,1)", builder.RandomSparse(3, 1), 3,
			[]network.Edge{{ID: 1, From: 1, To: 2}, {ID: 2, From: 1, To: 3}, {ID: 3, From: 2, To: 3}}},
		{"RandomSparse(4,0)", builder.RandomSparse(4, 0), 4, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n, err := builder.Build(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, n.NodeCount())
			if tc.edges == nil {
				assert.Zero(t, n.EdgeCount())
			} else {
				assert.Equal(t, tc.edges, n.Edges())
			}
			assert.Empty(t, n.Compressors())
			assert.True(t, n.IsConnected() || tc.edges == nil)
		})
	}
}

func TestBuild_Grid_Size(t *testing.T) {
	n, err := builder.Build(nil, builder.Grid(3, 4))
	require.NoError(t, err)
	require.Equal(t, 12, n.NodeCount())
	require.Equal(t, 3*3+2*4, n.EdgeCount())
	require.True(t, n.IsConnected())
}

func TestBuild_Options(t *testing.T) {
	n, err := builder.Build(
		[]builder.Option{builder.WithFirstID(10), builder.WithCompressorEvery(2)},
		builder.Path(5),
	)
	require.NoError(t, err)
	require.Equal(t, []network.NodeID{10, 11, 12, 13, 14}, n.Nodes())
	require.Equal(t, []network.Edge{{ID: 11, From: 11, To: 12}, {ID: 13, From: 13, To: 14}}, n.Compressors())
	require.Equal(t, []network.Edge{{ID: 10, From: 10, To: 11}, {ID: 12, From: 12, To: 13}}, n.Pipes())
}

func TestBuild_Composition(t *testing.T) {
	n, err := builder.Build(nil, builder.Path(2), builder.Ring(3))
	require.NoError(t, err)
	require.Equal(t, 5, n.NodeCount())
	require.Equal(t, 4, n.EdgeCount())
	require.Equal(t, [][]network.NodeID{{1, 2}, {3, 4, 5}}, n.Components())
}

func TestBuild_RandomSparse_Deterministic(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(42)}
	a, err := builder.Build(opts, builder.RandomSparse(8, 0.4))
	require.NoError(t, err)
	b, err := builder.Build(opts, builder.RandomSparse(8, 0.4))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		require.Less(t, e.From, e.To)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Ring(2)", builder.Ring(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(4,NaN)", builder.RandomSparse(4, math.NaN()), builder.ErrInvalidProbability},
		{"RandomSparse(3,0.5)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		_, err := builder.Build(nil, tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	// A seeded RNG must not let NaN slip past the range check.
	_, err := builder.Build([]builder.Option{builder.WithSeed(1)}, builder.RandomSparse(4, math.NaN()))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { builder.WithFirstID(-1) })
	require.Panics(t, func() { builder.WithCompressorEvery(-2) })
	require.Panics(t, func() { builder.WithRand(nil) })

	p := builder.DefaultProfile()
	p.Demand = nan()
	require.Panics(t, func() { builder.WithProfile(p) })
}

func TestBuild_Profile(t *testing.T) {
	p := builder.DefaultProfile()
	n, err := builder.Build(
		[]builder.Option{builder.WithProfile(p), builder.WithCompressorEvery(2)},
		builder.Path(4),
	)
	require.NoError(t, err)
	require.Empty(t, n.Uninitialized())

	supply, err := n.MaximumNodalInjections()
	require.NoError(t, err)
	require.Equal(t, map[network.NodeID]float64{1: p.Supply, 2: 0, 3: 0, 4: 0}, supply)
	demand, err := n.NodalDemands()
	require.NoError(t, err)
	require.Equal(t, p.Demand, demand[4])

	prog, err := model.Build(n)
	require.NoError(t, err)

	// Equal pressures and one unit of flow satisfy every row.
	x := make([]float64, len(prog.Vars()))
	for _, id := range n.Nodes() {
		i, _ := prog.VarIndex(piName(id))
		x[i] = 50
	}
	for _, e := range n.Edges() {
		i, _ := prog.VarIndex(phiName(e.ID))
		x[i] = 1
	}
	setPsi := func(id network.NodeID, v float64) {
		i, _ := prog.VarIndex(psiName(id))
		x[i] = v
	}
	setPsi(1, 1)
	setPsi(4, -1)

	v, err := prog.Violations(x, 1e-9)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestBuild_ProfileRejected(t *testing.T) {
	p := builder.DefaultProfile()
	p.CompressionCost = -1
	_, err := builder.Build([]builder.Option{builder.WithProfile(p)}, builder.Path(2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, network.ErrValidation)
}

func nan() float64 { return math.NaN() }

func piName(id network.NodeID) string  { return fmt.Sprintf("pi(%d)", id) }
func psiName(id network.NodeID) string { return fmt.Sprintf("psi(%d)", id) }
func phiName(id network.EdgeID) string { return fmt.Sprintf("phi(%d)", id) }
