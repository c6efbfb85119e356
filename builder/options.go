// SPDX-License-Identifier: MIT
// Package: tollpath/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors panic on values that can never be valid (nil
// functions, negative weights); constructors themselves never panic.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption configures a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme replaces the index → ID mapping used by Path and RandomSparse.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand shares an existing RNG stream.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn replaces the edge weight source.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithDiagonalWeight sets the weight of Grid diagonals (default √2).
func WithDiagonalWeight(w float64) BuilderOption {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic(fmt.Sprintf("builder: WithDiagonalWeight(%g)", w))
	}

	return func(c *builderConfig) {
		c.diagonals = true
		c.diagonalWeight = w
	}
}

// WithoutDiagonals makes Grid emit only horizontal and vertical edges.
func WithoutDiagonals() BuilderOption {
	return func(c *builderConfig) { c.diagonals = false }
}

// WithSpacing scales the coordinates assigned by Grid and Path.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%g)", s))
	}

	return func(c *builderConfig) { c.spacing = s }
}
