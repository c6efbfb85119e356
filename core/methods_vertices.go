// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex adjacency helpers and the Graph vertex lifecycle.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//   - OutgoingEdges() returns arcs in first-connection order.
//
// Concurrency:
//   - Vertex values are plain data; they are safe to share only once copied
//     out of a Graph.
//   - Graph methods take g.mu (read or write) for their whole duration.
package core

// NewVertex returns a standalone vertex with the given coordinates and no arcs.
func NewVertex(id string, x, y float64) Vertex {
	return Vertex{ID: id, X: x, Y: y}
}

// connect sets the weight of the arc v → to, appending a new arc or
// overwriting an existing one in place. Only the owning Graph calls it, on
// its stored *Vertex; copies handed to callers are read-only.
// Complexity: O(1) amortized.
func (v *Vertex) connect(to string, weight float64) {
	if v.index == nil {
		v.index = make(map[string]int)
	}
	if i, ok := v.index[to]; ok {
		v.arcs[i].Weight = weight
		return
	}
	v.index[to] = len(v.arcs)
	v.arcs = append(v.arcs, Arc{To: to, Weight: weight})
}

// Degree returns the number of outgoing arcs.
func (v Vertex) Degree() int { return len(v.arcs) }

// Weight returns the weight of the arc v → to, if present.
func (v Vertex) Weight(to string) (float64, bool) {
	i, ok := v.index[to]
	if !ok || i >= len(v.arcs) {
		return 0, false
	}

	return v.arcs[i].Weight, true
}

// OutgoingEdges returns a snapshot of the outgoing arcs in first-connection order.
// Complexity: O(deg(v)).
func (v Vertex) OutgoingEdges() []Arc {
	out := make([]Arc, len(v.arcs))
	copy(out, v.arcs)

	return out
}

// Range calls fn for every outgoing arc in first-connection order until fn
// returns false. It does not allocate.
func (v Vertex) Range(fn func(to string, weight float64) bool) {
	for _, a := range v.arcs {
		if !fn(a.To, a.Weight) {
			return
		}
	}
}

// clone returns a deep copy of v that shares no storage with the receiver.
func (v *Vertex) clone() Vertex {
	cp := Vertex{ID: v.ID, X: v.X, Y: v.Y, Visited: v.Visited}
	if len(v.arcs) > 0 {
		cp.arcs = make([]Arc, len(v.arcs))
		copy(cp.arcs, v.arcs)
		cp.index = make(map[string]int, len(v.index))
		for k, i := range v.index {
			cp.index[k] = i
		}
	}

	return cp
}

// AddVertex inserts a vertex at the origin if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// AddVertexAt inserts a vertex with coordinates (x, y), or moves an existing
// vertex to (x, y) without touching its arcs.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
func (g *Graph) AddVertexAt(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.ensureVertex(id)
	v.X, v.Y = x, y

	return nil
}

// SetPosition moves an existing vertex to (x, y).
//
// Errors:
//   - ErrVertexNotFound: if id is not in the graph.
func (g *Graph) SetPosition(id string, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.X, v.Y = x, y

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID. The boolean is false
// when the vertex does not exist; Vertex never fails otherwise.
func (g *Graph) Vertex(id string) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return v.clone(), true
}

// Vertices returns deep copies of all vertices in insertion order.
// The result is a snapshot: later graph mutations are not reflected.
// Complexity: O(V + E).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.vertices[id].clone())
	}

	return out
}

// VertexIDs returns vertex IDs in insertion order.
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// ResetVisited clears the Visited flag of every vertex. Edges are untouched.
// Complexity: O(V).
func (g *Graph) ResetVisited() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range g.vertices {
		v.Visited = false
	}
}

// MarkVisited sets the Visited flag on each listed vertex. Unknown IDs are ignored.
func (g *Graph) MarkVisited(ids ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		if v, ok := g.vertices[id]; ok {
			v.Visited = true
		}
	}
}

// ensureVertex returns the stored vertex for id, creating it at the origin
// when absent. Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id}
	g.vertices[id] = v
	g.order = append(g.order, id)

	return v
}
