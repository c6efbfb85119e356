// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures.
//
// BuildGraph(bopts, cons...) resolves options once and runs Constructors in
// order:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Grid(5, 5),
//	)
//
// Constructors:
//   - Grid(cols, rows): lattice with "x,y" IDs, orthogonal and diagonal pairs.
//   - RepriceDiagonals(cols, rows, w): overwrite diagonal weights of a Grid.
//   - Path(n): directed chain over idFn(0..n-1).
//   - Edges(e...): literal edge list.
//   - RandomSparse(n, p): seeded geometric digraph; weights ≥ Euclidean length.
//
// Same options, seed and constructor order always yield the same vertex and
// arc insertion order, which keeps search tie-breaking reproducible.
package builder
