// SPDX-License-Identifier: MIT
package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/tollpath/core"
)

// ReadCSV parses a comma-separated adjacency table and builds the graph
// with FromRows.
func ReadCSV(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // FromRows reports shape errors with better context
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("matrix: read csv: %w", err)
	}

	return FromRows(rows)
}

// WriteCSV writes g as an adjacency table. An empty graph writes nothing.
func WriteCSV(w io.Writer, g *core.Graph) error {
	rows, err := ToRows(g)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err = cw.WriteAll(rows); err != nil {
		return fmt.Errorf("matrix: write csv: %w", err)
	}

	return nil
}

// LoadCSV opens path and calls ReadCSV.
func LoadCSV(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// SaveCSV writes g to a temporary file next to path and renames it over
// path, so a failed write leaves any existing file intact.
func SaveCSV(path string, g *core.Graph) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("matrix: save csv: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = WriteCSV(f, g); err != nil {
		_ = f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("matrix: save csv: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("matrix: save csv: %w", err)
	}

	return nil
}
