// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for the builder
// constructors, verifying topology, insertion order, weights and errors.
package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollpath/builder"
	"github.com/katalvlaran/tollpath/core"
)

func TestGrid_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(5, 5))
	require.NoError(t, err)

	assert.Equal(t, 25, g.VertexCount())
	// 2·(4·5 right + 5·4 up + 4·4 diagonal) arcs.
	assert.Equal(t, 2*(20+20+16), g.EdgeCount())

	ids := g.VertexIDs()
	assert.Equal(t, []string{"0,0", "0,1", "0,2", "0,3", "0,4", "1,0"}, ids[:6])

	v, ok := g.Vertex("3,1")
	require.True(t, ok)
	assert.Equal(t, 3.0, v.X)
	assert.Equal(t, 1.0, v.Y)

	e, ok := g.Edge("2,2", "3,3")
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, e.Weight, 1e-12)
	assert.True(t, g.HasEdge("3,3", "2,2"))
	assert.False(t, g.HasEdge("2,2", "3,1"), "only the upper-right diagonal exists")
}

func TestGrid_ArcOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)

	v, ok := g.Vertex("1,1")
	require.True(t, ok)
	var order []string
	for _, a := range v.OutgoingEdges() {
		order = append(order, a.To)
	}
	// Reverse arcs from earlier cells come first, then this cell's own pairs.
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "2,1", "1,2", "2,2"}, order)
}

func TestGrid_Options(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithoutDiagonals(), builder.WithConstantWeight(2), builder.WithSpacing(10)},
		builder.Grid(2, 3),
	)
	require.NoError(t, err)
	assert.Equal(t, 2*(3+4), g.EdgeCount())
	e, ok := g.Edge("0,0", "1,0")
	require.True(t, ok)
	assert.Equal(t, 2.0, e.Weight)
	v, _ := g.Vertex("1,2")
	assert.Equal(t, 10.0, v.X)
	assert.Equal(t, 20.0, v.Y)

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithDiagonalWeight(3)}, builder.Grid(2, 2))
	require.NoError(t, err)
	e, _ = g.Edge("1,1", "0,0")
	assert.Equal(t, 3.0, e.Weight)
}

func TestRepriceDiagonals(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(4, 4), builder.RepriceDiagonals(4, 4, 3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		if e.From[0] != e.To[0] && e.From[2] != e.To[2] {
			assert.Equal(t, 3.0, e.Weight, "%s→%s", e.From, e.To)
		} else {
			assert.Equal(t, 1.0, e.Weight, "%s→%s", e.From, e.To)
		}
	}
}

func TestPathAndEdges(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string { return string(rune('a' + i)) })},
		builder.Path(4),
		builder.Edges(core.Edge{From: "d", To: "a", Weight: 9}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.VertexIDs())
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
	e, ok := g.Edge("d", "a")
	require.True(t, ok)
	assert.Equal(t, 9.0, e.Weight)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.15))
		require.NoError(t, err)

		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Positive(t, a.EdgeCount())

	for _, e := range a.Edges() {
		u, _ := a.Vertex(e.From)
		v, _ := a.Vertex(e.To)
		assert.GreaterOrEqual(t, e.Weight, core.Euclidean(u, v))
		assert.NotEqual(t, e.From, e.To)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 6*5, g.EdgeCount())

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 6, g.VertexCount())
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"grid zero cols", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"path one", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"sparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"sparse bad p", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse n", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"nil ctor", nil, nil, builder.ErrConstructFailed},
		{"negative edge", nil, builder.Edges(core.Edge{From: "a", To: "b", Weight: -1}), core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestApply_NilGraph(t *testing.T) {
	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithDiagonalWeight(-1) })
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
}
