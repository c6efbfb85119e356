// SPDX-License-Identifier: MIT
// File: table.go
// Role: labelled adjacency tables ([][]string).
//
// Layout (n vertices ⇒ (n+1)×(n+1)):
//
//	row 0:  "",   id1,  id2,  ...
//	row i:  idi,  w_i1, w_i2, ...
//
// Cell (i, j) is the weight of idi → idj. An empty cell or "None" means no
// edge. Targets are resolved by row index; non-empty header cells must agree
// with the row IDs.
package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tollpath/core"
)

// NoEdge is the cell text accepted, besides "", for a missing edge.
const NoEdge = "None"

// FromRows builds a graph from a labelled adjacency table. All row vertices
// are added first, in row order, so insertion order follows the table.
// An empty or header-only table yields an empty graph.
//
// Errors:
//   - ErrNonSquare:      a row has the wrong number of cells.
//   - ErrDuplicateID:    a row ID repeats.
//   - ErrHeaderMismatch: a non-empty header cell names a different ID.
//   - ErrBadCell:        a cell is not a number, "" or "None".
//   - core.ErrBadWeight / core.ErrEmptyVertexID from the graph, wrapped.
func FromRows(rows [][]string) (*core.Graph, error) {
	g := core.NewGraph()
	if len(rows) <= 1 {
		return g, nil
	}

	n := len(rows) - 1
	if len(rows[0]) != n+1 {
		return nil, fmt.Errorf("header has %d cells, want %d: %w", len(rows[0]), n+1, ErrNonSquare)
	}
	ids := make([]string, n)
	seen := make(map[string]struct{}, n)
	for i := 1; i <= n; i++ {
		if len(rows[i]) != n+1 {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(rows[i]), n+1, ErrNonSquare)
		}
		id := strings.TrimSpace(rows[i][0])
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("row %d: %q: %w", i, id, ErrDuplicateID)
		}
		seen[id] = struct{}{}
		ids[i-1] = id
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	for j := 1; j <= n; j++ {
		if h := strings.TrimSpace(rows[0][j]); h != "" && h != ids[j-1] {
			return nil, fmt.Errorf("column %d: header %q, row %q: %w", j, h, ids[j-1], ErrHeaderMismatch)
		}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			cell := strings.TrimSpace(rows[i][j])
			if cell == "" || cell == NoEdge {
				continue
			}
			w, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d) %q: %w", i, j, cell, ErrBadCell)
			}
			if err = g.AddEdge(ids[i-1], ids[j-1], w); err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// ToRows renders g as a labelled adjacency table with empty cells for
// missing edges. An empty graph yields nil.
func ToRows(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	m := ToMatrix(g)
	if len(m.IDs) == 0 {
		return nil, nil
	}

	rows := make([][]string, 0, len(m.IDs)+1)
	rows = append(rows, append([]string{""}, m.IDs...))
	for _, from := range m.IDs {
		row := make([]string, 0, len(m.IDs)+1)
		row = append(row, from)
		for _, to := range m.IDs {
			cell := ""
			if w, ok := m.Weight(from, to); ok {
				cell = strconv.FormatFloat(w, 'g', -1, 64)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
