// SPDX-License-Identifier: MIT
package matrix

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/katalvlaran/tollpath/core"
)

// Fingerprint returns a hex SHA-256 digest of everything a search can
// observe in g: vertex order, positions, and every arc with its weight.
// Two graphs with equal fingerprints answer every query identically.
func Fingerprint(g *core.Graph) string {
	h := sha256.New()
	if g == nil {
		return hex.EncodeToString(h.Sum(nil))
	}

	buf := make([]byte, 0, 64)
	for _, v := range g.Vertices() {
		buf = buf[:0]
		buf = append(buf, 'v', 0)
		buf = append(buf, v.ID...)
		buf = append(buf, 0)
		buf = strconv.AppendFloat(buf, v.X, 'g', -1, 64)
		buf = append(buf, 0)
		buf = strconv.AppendFloat(buf, v.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		h.Write(buf)
		for _, a := range v.OutgoingEdges() {
			buf = buf[:0]
			buf = append(buf, 'e', 0)
			buf = append(buf, a.To...)
			buf = append(buf, 0)
			buf = strconv.AppendFloat(buf, a.Weight, 'g', -1, 64)
			buf = append(buf, '\n')
			h.Write(buf)
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
