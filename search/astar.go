// SPDX-License-Identifier: MIT
package search

import "github.com/katalvlaran/tollpath/core"

// AStar returns a minimum-cost path from begin to end guided by h.
//
// The queue is ordered by accumulated cost + h(vertex, end) while the
// recorded cost stays the accumulated cost alone, so Result.Cost is the true
// path weight. With an admissible h the cost equals Dijkstra's; the chosen
// path may differ when several optimal paths exist.
//
// Errors:
//   - ErrNilGraph:     g is nil.
//   - ErrNilHeuristic: h is nil.
//   - ErrBadMaxCost:   WithMaxCost received a negative or NaN cap.
func AStar(g *core.Graph, begin, end string, h Heuristic, opts ...Option) (Result, error) {
	if g == nil {
		return emptyResult(), ErrNilGraph
	}
	if h == nil {
		return emptyResult(), ErrNilHeuristic
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return emptyResult(), err
	}

	return newRunner(g, begin, end, h, nil, cfg).run("astar")
}
