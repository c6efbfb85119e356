// SPDX-License-Identifier: MIT
package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollpath/builder"
	"github.com/katalvlaran/tollpath/core"
)

const (
	wilson   = "Wilson Hall"
	wonder   = "Wonder Hall"
	caseHall = "Case Hall"
	stem     = "STEM"
	engineer = "Engineer Building"
)

// campus has two routes of cost 12 from Wilson Hall to Engineer Building:
// via Wonder Hall (2+10) and via Case Hall (4+8).
func campus(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []core.Vertex{
		core.NewVertex(wilson, 0, 0),
		core.NewVertex(wonder, 0, 1),
		core.NewVertex(caseHall, 2, 2),
		core.NewVertex(stem, 4, 4),
		core.NewVertex(engineer, 5, 5),
	} {
		require.NoError(t, g.AddVertexAt(v.ID, v.X, v.Y))
	}
	for _, e := range []core.Edge{
		{From: wilson, To: wonder, Weight: 2},
		{From: wilson, To: caseHall, Weight: 4},
		{From: wonder, To: stem, Weight: 8},
		{From: wonder, To: engineer, Weight: 10},
		{From: caseHall, To: engineer, Weight: 8},
		{From: stem, To: engineer, Weight: 3},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func grid5(t testing.TB, extra ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, append([]builder.Constructor{builder.Grid(5, 5)}, extra...)...)
	require.NoError(t, err)

	return g
}

func pathCost(t testing.TB, g *core.Graph, path []string) float64 {
	t.Helper()
	var sum float64
	for i := 1; i < len(path); i++ {
		e, ok := g.Edge(path[i-1], path[i])
		require.True(t, ok, "missing edge %s→%s", path[i-1], path[i])
		sum += e.Weight
	}

	return sum
}
