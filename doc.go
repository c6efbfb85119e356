// SPDX-License-Identifier: MIT
// Package tollpath finds cheapest routes through directed, weighted graphs
// whose vertices sit on a plane, optionally spending a one-time toll coupon
// that discounts a single edge of the route.
//
// The module is organized as:
//
//	core/     - thread-safe directed graph with positions and insertion order
//	pq/       - min-priority queue with decrease-key and FIFO tie-breaking
//	search/   - Dijkstra, A* and coupon-aware A* over core.Graph
//	builder/  - deterministic grid, path and random-sparse constructors
//	matrix/   - adjacency-matrix CSV, edge lists and YAML vertex positions
//	internal/ - configuration, query planning, CLI and HTTP service
//	cmd/      - the tollpath command
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("home", "toll", 4)
//	_ = g.AddEdge("toll", "work", 4)
//	res, _ := search.AStarCoupon(g, "home", "work", search.Zero,
//		search.VertexCoupon(0.5, "toll"))
//	// res.Path = [home toll work], res.Cost = 6
package tollpath
