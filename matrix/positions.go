// SPDX-License-Identifier: MIT
// File: positions.go
// Role: YAML vertex position documents.
//
//	positions:
//	  - id: Wilson Hall
//	    x: 0
//	    y: 0
//
// Adjacency tables carry no coordinates; heuristic searches need them, so
// positions travel in a side document applied after the graph is built.
package matrix

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tollpath/core"
)

// Position places one vertex in the plane.
type Position struct {
	ID string  `yaml:"id" json:"id"`
	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
}

// PositionsFile is the YAML document root.
type PositionsFile struct {
	Positions []Position `yaml:"positions"`
}

// DecodePositions parses a positions document.
//
// Errors:
//   - ErrBadPositions: YAML syntax error, empty ID, duplicate ID or a
//     non-finite coordinate.
func DecodePositions(r io.Reader) ([]Position, error) {
	var doc PositionsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadPositions, err)
	}

	seen := make(map[string]struct{}, len(doc.Positions))
	for i, p := range doc.Positions {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrBadPositions, i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrBadPositions, p.ID)
		}
		seen[p.ID] = struct{}{}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("%w: %q has a non-finite coordinate", ErrBadPositions, p.ID)
		}
	}

	return doc.Positions, nil
}

// EncodePositions writes the positions of every vertex of g in insertion order.
func EncodePositions(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	vs := g.Vertices()
	doc := PositionsFile{Positions: make([]Position, 0, len(vs))}
	for _, v := range vs {
		doc.Positions = append(doc.Positions, Position{ID: v.ID, X: v.X, Y: v.Y})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("matrix: encode positions: %w", err)
	}

	return enc.Close()
}

// LoadPositions reads a positions document from path.
func LoadPositions(path string) ([]Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ps, err := DecodePositions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ps, nil
}

// ApplyPositions moves each listed vertex of g. With strict set, an ID that
// is not in g fails with core.ErrVertexNotFound; otherwise it is skipped.
// It returns the number of vertices moved.
func ApplyPositions(g *core.Graph, ps []Position, strict bool) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	moved := 0
	for _, p := range ps {
		if err := g.SetPosition(p.ID, p.X, p.Y); err != nil {
			if strict {
				return moved, fmt.Errorf("position %q: %w", p.ID, err)
			}

			continue
		}
		moved++
	}

	return moved, nil
}
