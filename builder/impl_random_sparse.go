// SPDX-License-Identifier: MIT
// Package: tollpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Vertices are scattered uniformly over the square [0, n·spacing)².
//   - Each ordered pair (i,j), i≠j, becomes a directed arc with probability p.
//   - Arc weight = Euclidean length + cfg.weightFn(rng). With a non-negative
//     weightFn the weight never undercuts straight-line distance, so the
//     Euclidean and zero heuristics stay admissible on the result.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil even for p∈{0,1}, since positions are random
//     (else ErrNeedRandSource).
//
// Determinism:
//   - All positions are drawn first (i asc), then one Bernoulli trial per
//     ordered pair (i asc, j asc).
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tollpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a geometric directed graph
// over n vertices with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		rng := cfg.rng
		side := float64(n) * cfg.spacing
		pos := make([]core.Vertex, n)
		for i := 0; i < n; i++ {
			pos[i] = core.NewVertex(cfg.idFn(i), rng.Float64()*side, rng.Float64()*side)
			if err := g.AddVertexAt(pos[i].ID, pos[i].X, pos[i].Y); err != nil {
				return fmt.Errorf("%s: AddVertexAt(%s): %w", methodRandomSparse, pos[i].ID, err)
			}
		}

		var w float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || rng.Float64() >= p {
					continue
				}
				w = core.Euclidean(pos[i], pos[j]) + cfg.weightFn(rng)
				if err := g.AddEdge(pos[i].ID, pos[j].ID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w",
						methodRandomSparse, pos[i].ID, pos[j].ID, w, err)
				}
			}
		}

		return nil
	}
}
