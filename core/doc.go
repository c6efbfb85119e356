// SPDX-License-Identifier: MIT
// Package core provides a thread-safe, in-memory directed weighted graph
// built on an adjacency map, the data model underneath every tollpath search.
//
// The Graph G = (V,E) has these properties:
//
//   - Directed edges only: AddEdge("a","b",w) does not create b→a.
//   - One weight per ordered pair: a later AddEdge overwrites the weight in place.
//   - Non-negative, finite weights; anything else fails with ErrBadWeight.
//   - Planar coordinates (X, Y) on every vertex, consumed by Euclidean and Taxicab.
//   - Deterministic iteration: vertices in insertion order, arcs in
//     first-connection order. Search tie-breaking depends on this.
//   - Value semantics at the boundary: Vertex, Vertices, Edge and Edges return
//     copies, so no caller can mutate the adjacency behind the graph's back.
//   - A single sync.RWMutex guards the catalog.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                    // O(1)
//	AddVertexAt(id string, x, y float64) error    // O(1)
//	SetPosition(id string, x, y float64) error    // O(1)
//	HasVertex(id string) bool                     // O(1)
//	Vertex(id string) (Vertex, bool)              // O(deg)
//	Vertices() []Vertex                           // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(begin, end string, w float64) error   // O(1)†
//	SetWeight(begin, end string, w float64) error // O(1)
//	Edge(begin, end string) (Edge, bool)          // O(1)
//	Edges() []Edge                                // O(V+E)
//
//	// Search support
//	BuildPath(prev map[string]string, begin, end string) ([]string, float64, error)
//	ResetVisited()                                // O(V)
//	MarkVisited(ids ...string)                    // O(k)
//
//	// Maintenance
//	Clone() *Graph                                // O(V+E)
//	Clear()                                       // O(1)
//	Stats() Stats                                 // O(V)
//
// † amortized: map insertion plus slice append.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrBadWeight      – negative, NaN or infinite weight
//	ErrBrokenPath     – predecessor chain does not reach the begin vertex
package core
