// SPDX-License-Identifier: MIT
// Package: tollpath/builder
//
// impl_path.go: Path(n) and Edges(...) constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tollpath/core"
)

const (
	methodPath   = "Path"
	methodEdges  = "Edges"
	minPathNodes = 2
)

// Path returns a Constructor for the directed chain idFn(0) → … → idFn(n-1).
// Vertex i sits at (i·spacing, 0); arc weights come from cfg.weightFn.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertexAt(id, float64(i)*cfg.spacing, 0); err != nil {
				return fmt.Errorf("%s: AddVertexAt(%s): %w", methodPath, id, err)
			}
		}

		var (
			w        float64
			uID, vID string
		)
		for i := 1; i < n; i++ {
			uID, vID = cfg.idFn(i-1), cfg.idFn(i)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodPath, uID, vID, w, err)
			}
		}

		return nil
	}
}

// Edges returns a Constructor that adds the listed directed edges in order.
func Edges(edges ...core.Edge) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, e := range edges {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodEdges, e.From, e.To, e.Weight, err)
			}
		}

		return nil
	}
}
