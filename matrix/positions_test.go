// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollpath/core"
	"github.com/katalvlaran/tollpath/matrix"
)

const campusPositions = `positions:
  - id: Wilson Hall
    x: 0
    y: 0
  - id: Case Hall
    x: 2
    y: 2
  - id: Elsewhere
    x: 9
    y: 9
`

func TestDecodeAndApplyPositions(t *testing.T) {
	ps, err := matrix.DecodePositions(strings.NewReader(campusPositions))
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, matrix.Position{ID: "Case Hall", X: 2, Y: 2}, ps[1])

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Wilson Hall", "Case Hall", 4))

	moved, err := matrix.ApplyPositions(g, ps, false)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)
	v, _ := g.Vertex("Case Hall")
	assert.Equal(t, 2.0, v.X)

	_, err = matrix.ApplyPositions(g, ps, true)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = matrix.ApplyPositions(nil, ps, false)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestDecodePositions_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":    "positions: [",
		"unknown":   "positions:\n  - id: a\n    z: 1\n",
		"no id":     "positions:\n  - x: 1\n",
		"duplicate": "positions:\n  - id: a\n  - id: a\n",
		"nan":       "positions:\n  - id: a\n    x: .nan\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.DecodePositions(strings.NewReader(doc))
			assert.ErrorIs(t, err, matrix.ErrBadPositions)
		})
	}

	ps, err := matrix.DecodePositions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestEncodePositions_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertexAt("a", 1.5, -2))
	require.NoError(t, g.AddVertexAt("b", 0, 3))

	var buf bytes.Buffer
	require.NoError(t, matrix.EncodePositions(&buf, g))

	path := filepath.Join(t.TempDir(), "pos.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	ps, err := matrix.LoadPositions(path)
	require.NoError(t, err)
	assert.Equal(t, []matrix.Position{{ID: "a", X: 1.5, Y: -2}, {ID: "b", X: 0, Y: 3}}, ps)

	assert.ErrorIs(t, matrix.EncodePositions(&buf, nil), matrix.ErrGraphNil)
}
