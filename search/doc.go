// SPDX-License-Identifier: MIT

// Package search finds shortest paths over a core.Graph.
//
// Three entry points share one relaxation loop:
//
//	Dijkstra(g, begin, end, opts...)            uniform-cost search
//	AStar(g, begin, end, h, opts...)            heuristic-guided search
//	AStarCoupon(g, begin, end, h, c, opts...)   A* plus a one-edge discount
//
// Every entry point takes plain vertex IDs and returns a Result. A missing
// endpoint or an unreachable goal is not an error: Path is empty and Cost is
// zero. Errors are reserved for invalid arguments (ErrNilGraph,
// ErrNilHeuristic, ErrNilCoupon, ErrBadMultiplier, ErrBadMaxCost) and for
// ErrInternal, which indicates a bug.
//
// Per-search state (costs, predecessors, the decrease-key queue from package
// pq and its visited set) lives in a private context, so searches need no
// reset step between runs. WithMarkVisited copies the visited set onto the
// graph for callers that inspect or render it.
//
// Determinism:
//
//   - Arcs are relaxed in first-connection order.
//   - Equal queue priorities are extracted FIFO.
//   - Relaxation requires a strict improvement, so the first discovered of
//     several equal-cost routes is kept.
//
// Coupons:
//
// A Coupon is a vertex predicate and a multiplier. The search carries, for
// every vertex, the lightest eligible edge on its current best path. When
// the goal is reached that edge becomes Result.Adjustment. The graph is not
// modified unless WithApplyAdjustment is set; otherwise callers decide
// whether to call Adjustment.Apply.
//
// Complexity: O((V + E) log V) time, O(V + E) space for every entry point.
package search
