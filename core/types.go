// SPDX-License-Identifier: MIT
// File: types.go
// Role: declares Arc, Vertex, Edge, Graph, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrBadWeight      - weight is negative, NaN or infinite.
//	ErrBrokenPath     - predecessor map does not lead back to the start vertex.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrBrokenPath indicates that a predecessor map has no chain from the end
	// vertex back to the begin vertex.
	ErrBrokenPath = errors.New("core: predecessor chain is broken")
)

// Arc is one outgoing adjacency entry of a Vertex.
type Arc struct {
	// To is the neighbor vertex ID.
	To string

	// Weight is the non-negative cost of traversing the arc.
	Weight float64
}

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. X and Y are planar
// coordinates consumed only by distance metrics. Outgoing arcs keep the order
// in which each neighbor was first connected; overwriting a weight keeps the
// neighbor in place.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// X, Y are the planar coordinates of this Vertex.
	X, Y float64

	// Visited is set by searches run with search.WithMarkVisited and cleared
	// by Graph.ResetVisited.
	Visited bool

	arcs  []Arc          // outgoing arcs in first-insertion order
	index map[string]int // neighbor ID → position in arcs
}

// Edge is a directed (From → To, Weight) triple.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is an in-memory directed, weighted adjacency-map graph.
//
// Graph exclusively owns its vertices: every accessor returns a copy, so
// callers can never alias the stored adjacency. order records insertion order
// of vertex IDs and drives all enumeration, which keeps search tie-breaking
// reproducible.
type Graph struct {
	mu sync.RWMutex // guards order and vertices

	order    []string           // vertex IDs in insertion order
	vertices map[string]*Vertex // vertex ID → Vertex
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
	}
}
