// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Directed edge lifecycle & queries.
//
// Determinism:
//   - Edges() enumerates vertices in insertion order, then each vertex's arcs
//     in first-connection order.
//
// Concurrency:
//   - All methods take g.mu for their whole duration.
package core

import (
	"fmt"
	"math"
)

// AddEdge ensures both endpoints exist (creating missing ones at the origin)
// and sets the weight of the directed edge begin → end, overwriting any
// previous weight. Edges are one-way: begin → end does not imply end → begin.
//
// Errors:
//   - ErrEmptyVertexID: if begin or end is empty.
//   - ErrBadWeight:     if weight is negative, NaN or infinite.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(begin, end string, weight float64) error {
	if begin == "" || end == "" {
		return ErrEmptyVertexID
	}
	if err := checkWeight(weight); err != nil {
		return fmt.Errorf("AddEdge(%s→%s): %w", begin, end, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from := g.ensureVertex(begin)
	g.ensureVertex(end)
	from.connect(end, weight)

	return nil
}

// SetWeight overwrites the weight of an existing edge begin → end.
//
// Errors:
//   - ErrBadWeight:    if weight is negative, NaN or infinite.
//   - ErrEdgeNotFound: if the edge does not exist.
func (g *Graph) SetWeight(begin, end string, weight float64) error {
	if err := checkWeight(weight); err != nil {
		return fmt.Errorf("SetWeight(%s→%s): %w", begin, end, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.vertices[begin]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = from.index[end]; !ok {
		return ErrEdgeNotFound
	}
	from.connect(end, weight)

	return nil
}

// Edge returns the directed edge begin → end. The boolean is false when
// either endpoint is absent or no such edge exists.
func (g *Graph) Edge(begin, end string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeLocked(begin, end)
}

// HasEdge reports whether the directed edge begin → end exists.
func (g *Graph) HasEdge(begin, end string) bool {
	_, ok := g.Edge(begin, end)

	return ok
}

// Edges returns a snapshot of all edges.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, id := range g.order {
		for _, a := range g.vertices[id].arcs {
			out = append(out, Edge{From: id, To: a.To, Weight: a.Weight})
		}
	}

	return out
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, v := range g.vertices {
		n += len(v.arcs)
	}

	return n
}

// edgeLocked looks up begin → end. Caller must hold g.mu.
func (g *Graph) edgeLocked(begin, end string) (Edge, bool) {
	from, ok := g.vertices[begin]
	if !ok {
		return Edge{}, false
	}
	if _, ok = g.vertices[end]; !ok {
		return Edge{}, false
	}
	w, ok := from.Weight(end)
	if !ok {
		return Edge{}, false
	}

	return Edge{From: begin, To: end, Weight: w}, true
}

func checkWeight(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}

	return nil
}
