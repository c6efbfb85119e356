// SPDX-License-Identifier: MIT
package core

import "math"

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Vertex) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Taxicab returns the grid (L1) distance between a and b.
func Taxicab(a, b Vertex) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// EuclideanDistance is the method form of Euclidean.
func (v Vertex) EuclideanDistance(other Vertex) float64 { return Euclidean(v, other) }

// TaxicabDistance is the method form of Taxicab.
func (v Vertex) TaxicabDistance(other Vertex) float64 { return Taxicab(v, other) }
