// SPDX-License-Identifier: MIT
// Package: tollpath/builder
//
// impl_grid.go: implementation of Grid(cols, rows) constructor.
//
// Canonical model:
//   • Planar lattice; every cell links to its right and upper neighbor in
//     both directions, plus the upper-right diagonal when diagonals are on.
//   • Vertex IDs use the fixed scheme "x,y" with coordinates (x·s, y·s),
//     s = cfg.spacing. This is a deliberate exception to cfg.idFn.
//
// Contract:
//   • cols ≥ 1 and rows ≥ 1 (else ErrTooFewVertices).
//   • Orthogonal weight: cfg.weightFn(cfg.rng) per undirected pair, shared by
//     both arcs. Diagonal weight: cfg.diagonalWeight (default √2).
//
// Determinism:
//   • Vertex order: x asc, then y asc.
//   • Edge order per (x,y): right pair, up pair, diagonal pair; each pair
//     forward arc first.
//
// Complexity: O(cols·rows) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tollpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "x,y"
)

// GridID returns the vertex ID Grid assigns to cell (x, y).
func GridID(x, y int) string { return fmt.Sprintf(gridIDFmt, x, y) }

// Grid returns a Constructor that builds a cols×rows lattice.
func Grid(cols, rows int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cols < minGridDim || rows < minGridDim {
			return fmt.Errorf("%s: cols=%d, rows=%d (each must be ≥ %d): %w",
				methodGrid, cols, rows, minGridDim, ErrTooFewVertices)
		}

		for x := 0; x < cols; x++ {
			for y := 0; y < rows; y++ {
				id := GridID(x, y)
				if err := g.AddVertexAt(id, float64(x)*cfg.spacing, float64(y)*cfg.spacing); err != nil {
					return fmt.Errorf("%s: AddVertexAt(%s): %w", methodGrid, id, err)
				}
			}
		}

		for x := 0; x < cols; x++ {
			for y := 0; y < rows; y++ {
				u := GridID(x, y)
				if x+1 < cols {
					if err := addPair(g, u, GridID(x+1, y), cfg.weightFn(cfg.rng)); err != nil {
						return err
					}
				}
				if y+1 < rows {
					if err := addPair(g, u, GridID(x, y+1), cfg.weightFn(cfg.rng)); err != nil {
						return err
					}
				}
				if cfg.diagonals && x+1 < cols && y+1 < rows {
					if err := addPair(g, u, GridID(x+1, y+1), cfg.diagonalWeight); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RepriceDiagonals returns a Constructor that overwrites the weight of every
// diagonal arc of an existing cols×rows Grid. Missing arcs are skipped.
func RepriceDiagonals(cols, rows int, w float64) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for x := 0; x+1 < cols; x++ {
			for y := 0; y+1 < rows; y++ {
				u, v := GridID(x, y), GridID(x+1, y+1)
				for _, arc := range [2][2]string{{u, v}, {v, u}} {
					if !g.HasEdge(arc[0], arc[1]) {
						continue
					}
					if err := g.SetWeight(arc[0], arc[1], w); err != nil {
						return fmt.Errorf("%s: SetWeight(%s→%s, w=%g): %w", methodGrid, arc[0], arc[1], w, err)
					}
				}
			}
		}

		return nil
	}
}

func addPair(g *core.Graph, u, v string, w float64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, u, v, w, err)
	}
	if err := g.AddEdge(v, u, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, v, u, w, err)
	}

	return nil
}
