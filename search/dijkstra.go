// SPDX-License-Identifier: MIT
package search

import "github.com/katalvlaran/tollpath/core"

// Dijkstra returns the minimum-cost path from begin to end using uniform-cost
// search. Weights are non-negative by construction of core.Graph, so the
// first extraction of end is optimal.
//
// An absent endpoint or an unreachable goal yields an empty Path with zero
// Cost and a nil error.
//
// Errors:
//   - ErrNilGraph:   g is nil.
//   - ErrBadMaxCost: WithMaxCost received a negative or NaN cap.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, begin, end string, opts ...Option) (Result, error) {
	if g == nil {
		return emptyResult(), ErrNilGraph
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return emptyResult(), err
	}

	return newRunner(g, begin, end, Zero, nil, cfg).run("dijkstra")
}
