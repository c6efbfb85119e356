// SPDX-License-Identifier: MIT
// File: methods_path.go
// Role: Path reconstruction from a predecessor map.
package core

import "fmt"

// BuildPath walks backward from end through prev until begin is reached,
// reverses the sequence and sums the live weight of every consecutive pair.
//
// The returned cost is computed from the graph as it is now, not from any
// distances recorded during a search, so it always matches the edges a caller
// would traverse.
//
// Errors:
//   - ErrBrokenPath: prev has no chain from end back to begin, the chain
//     cycles, or a hop references an edge that no longer exists.
//
// Complexity: O(L) where L is the path length.
func (g *Graph) BuildPath(prev map[string]string, begin, end string) ([]string, float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[end]; !ok {
		return nil, 0, fmt.Errorf("%w: end %q: %w", ErrBrokenPath, end, ErrVertexNotFound)
	}

	// A simple path visits each vertex at most once; anything longer is a cycle.
	limit := len(g.order)
	path := []string{end}
	var cost float64
	for cur := end; cur != begin; {
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil, 0, fmt.Errorf("%w: no predecessor for %q", ErrBrokenPath, cur)
		}
		e, ok := g.edgeLocked(p, cur)
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s→%s: %w", ErrBrokenPath, p, cur, ErrEdgeNotFound)
		}
		cost += e.Weight
		path = append(path, p)
		if len(path) > limit {
			return nil, 0, fmt.Errorf("%w: cycle through %q", ErrBrokenPath, p)
		}
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, cost, nil
}
