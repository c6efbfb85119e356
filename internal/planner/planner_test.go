// SPDX-License-Identifier: MIT
package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollpath/core"
	"github.com/katalvlaran/tollpath/internal/planner"
	"github.com/katalvlaran/tollpath/search"
)

func campus(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertexAt("Wilson Hall", 0, 0))
	require.NoError(t, g.AddVertexAt("Wonder Hall", 0, 1))
	require.NoError(t, g.AddVertexAt("Case Hall", 2, 2))
	require.NoError(t, g.AddVertexAt("STEM", 4, 4))
	require.NoError(t, g.AddVertexAt("Engineer Building", 5, 5))
	require.NoError(t, g.AddEdge("Wilson Hall", "Wonder Hall", 2))
	require.NoError(t, g.AddEdge("Wilson Hall", "Case Hall", 4))
	require.NoError(t, g.AddEdge("Wonder Hall", "STEM", 8))
	require.NoError(t, g.AddEdge("Wonder Hall", "Engineer Building", 10))
	require.NoError(t, g.AddEdge("Case Hall", "Engineer Building", 8))
	require.NoError(t, g.AddEdge("STEM", "Engineer Building", 3))

	return g
}

func TestQuery_Normalize(t *testing.T) {
	cases := []struct {
		in       planner.Query
		wantAlgo string
		wantH    string
	}{
		{planner.Query{}, planner.AlgoDijkstra, ""},
		{planner.Query{Heuristic: "Taxicab"}, planner.AlgoAStar, planner.HeuristicTaxicab},
		{planner.Query{Coupon: &planner.CouponQuery{}}, planner.AlgoCoupon, planner.HeuristicEuclidean},
		{planner.Query{Algorithm: " ASTAR "}, planner.AlgoAStar, planner.HeuristicEuclidean},
	}
	for _, tc := range cases {
		q := tc.in
		q.Normalize()
		assert.Equal(t, tc.wantAlgo, q.Algorithm)
		assert.Equal(t, tc.wantH, q.Heuristic)
	}
}

func TestPlan(t *testing.T) {
	g := campus(t)
	from, to := "Wilson Hall", "Engineer Building"

	res, err := planner.Plan(g, planner.Query{From: from, To: to})
	require.NoError(t, err)
	assert.Equal(t, []string{from, "Wonder Hall", to}, res.Path)

	res, err = planner.Plan(g, planner.Query{From: from, To: to, Heuristic: "taxicab"})
	require.NoError(t, err)
	assert.Equal(t, []string{from, "Case Hall", to}, res.Path)
	assert.Equal(t, 12.0, res.Cost)

	res, err = planner.Plan(g, planner.Query{
		From: from, To: to, Heuristic: "taxicab",
		Coupon: &planner.CouponQuery{Vertices: []string{"Case Hall"}, Multiplier: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Cost)
	require.NotNil(t, res.Adjustment)
	e, _ := g.Edge(from, "Case Hall")
	assert.Equal(t, 4.0, e.Weight)

	res, err = planner.Plan(g, planner.Query{Algorithm: "coupon", From: from, To: to, Heuristic: "taxicab"})
	require.NoError(t, err)
	assert.Nil(t, res.Adjustment)
	assert.Equal(t, 12.0, res.Cost)
}

func TestPlan_Apply(t *testing.T) {
	g := campus(t)
	q := planner.Query{
		From: "Wilson Hall", To: "Engineer Building", Heuristic: "taxicab", Apply: true,
		Coupon: &planner.CouponQuery{Vertices: []string{"Case Hall"}, Multiplier: 0.5},
	}
	q.Normalize()
	assert.True(t, q.Mutates())

	_, err := planner.Plan(g, q)
	require.NoError(t, err)
	e, _ := g.Edge("Wilson Hall", "Case Hall")
	assert.Equal(t, 2.0, e.Weight)
}

func TestPlan_Errors(t *testing.T) {
	g := campus(t)
	_, err := planner.Plan(g, planner.Query{From: "a"})
	assert.ErrorIs(t, err, planner.ErrMissingEndpoint)
	_, err = planner.Plan(g, planner.Query{From: "a", To: "b", Algorithm: "bfs"})
	assert.ErrorIs(t, err, planner.ErrUnknownAlgorithm)
	_, err = planner.Plan(g, planner.Query{From: "a", To: "b", Heuristic: "chebyshev"})
	assert.ErrorIs(t, err, planner.ErrUnknownHeuristic)
	_, err = planner.Plan(g, planner.Query{From: "a", To: "b", Coupon: &planner.CouponQuery{Multiplier: -1}})
	assert.ErrorIs(t, err, search.ErrBadMultiplier)
	_, err = planner.Plan(g, planner.Query{From: "a", To: "b"}, search.WithMaxCost(-1))
	assert.ErrorIs(t, err, search.ErrBadMaxCost)
}
