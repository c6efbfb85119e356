// SPDX-License-Identifier: MIT
// Package: tollpath/builder
//
// config.go - resolved builder configuration.

package builder

import (
	"math"
	"math/rand"
	"strconv"
)

// builderConfig holds the resolved knobs for all constructors. It is built
// once per BuildGraph call and passed by value.
type builderConfig struct {
	// idFn maps an index to a vertex ID (Path, RandomSparse).
	idFn func(int) string

	// rng drives stochastic constructors; nil unless WithSeed/WithRand is set.
	rng *rand.Rand

	// weightFn supplies orthogonal grid weights, path weights and the
	// non-negative surcharge RandomSparse adds on top of geometric length.
	weightFn WeightFn

	diagonals      bool    // Grid emits diagonal edges
	diagonalWeight float64 // weight of each diagonal edge
	spacing        float64 // distance between adjacent grid/path coordinates
}

const defaultSpacing = 1.0

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:           decimalID,
		weightFn:       DefaultWeightFn,
		diagonals:      true,
		diagonalWeight: math.Sqrt2,
		spacing:        defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func decimalID(i int) string { return strconv.Itoa(i) }
