// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Determinism:
//   - Clone preserves vertex insertion order and arc order.
//
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.
package core

// Clone returns a deep copy of the Graph: vertices, coordinates, visited
// flags and edges. The clone shares no storage with g.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		order:    make([]string, len(g.order)),
		vertices: make(map[string]*Vertex, len(g.vertices)),
	}
	copy(clone.order, g.order)
	for id, v := range g.vertices {
		cp := v.clone()
		clone.vertices[id] = &cp
	}

	return clone
}

// Clear removes every vertex and edge.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.order = nil
	g.vertices = make(map[string]*Vertex)
}

// Stats is a read-only summary of graph size.
type Stats struct {
	VertexCount  int
	EdgeCount    int
	VisitedCount int
}

// Stats returns a snapshot of vertex, edge and visited counts.
// Complexity: O(V).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{VertexCount: len(g.order)}
	for _, v := range g.vertices {
		s.EdgeCount += len(v.arcs)
		if v.Visited {
			s.VisitedCount++
		}
	}

	return s
}
