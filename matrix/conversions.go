// SPDX-License-Identifier: MIT
// Package matrix converts between core.Graph and flat representations:
// edge lists, dense weight matrices, the labelled adjacency table stored in
// CSV files, and YAML vertex position documents.
package matrix

import (
	"math"

	"github.com/katalvlaran/tollpath/core"
)

// EdgeListItem is a flat representation of a single edge.
type EdgeListItem struct {
	FromID string  `json:"from" yaml:"from"`
	ToID   string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// ToEdgeList returns all edges of g in vertex insertion order, then arc order.
//
// Time Complexity: O(V + E)
func ToEdgeList(g *core.Graph) []EdgeListItem {
	edges := g.Edges()
	out := make([]EdgeListItem, 0, len(edges))
	for _, e := range edges {
		out = append(out, EdgeListItem{FromID: e.From, ToID: e.To, Weight: e.Weight})
	}

	return out
}

// FromEdgeList adds every item to g in order. The first failing item aborts.
func FromEdgeList(g *core.Graph, items []EdgeListItem) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, it := range items {
		if err := g.AddEdge(it.FromID, it.ToID, it.Weight); err != nil {
			return err
		}
	}

	return nil
}

// Matrix is a dense adjacency-matrix representation.
//
// IDs lists vertices in graph insertion order; Index is its inverse.
// Data[i][j] holds the weight of edge IDs[i]→IDs[j], or +Inf if absent.
type Matrix struct {
	IDs   []string
	Index map[string]int
	Data  [][]float64
}

// ToMatrix constructs a Matrix from g.
//
// Time Complexity: O(V² + E)
// Memory: O(V²)
func ToMatrix(g *core.Graph) *Matrix {
	ids := g.VertexIDs()
	n := len(ids)
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
		for j := range data[i] {
			data[i][j] = math.Inf(1)
		}
	}
	for _, e := range g.Edges() {
		data[idx[e.From]][idx[e.To]] = e.Weight
	}

	return &Matrix{IDs: ids, Index: idx, Data: data}
}

// Weight returns the weight of from→to and whether the edge exists.
func (m *Matrix) Weight(from, to string) (float64, bool) {
	i, ok := m.Index[from]
	if !ok {
		return 0, false
	}
	j, ok := m.Index[to]
	if !ok {
		return 0, false
	}
	w := m.Data[i][j]

	return w, !math.IsInf(w, 1)
}
