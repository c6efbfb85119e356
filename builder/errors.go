// SPDX-License-Identifier: MIT
// Package: tollpath/builder
//
// errors.go - sentinel errors. Constructors wrap them with a method tag:
//
//	fmt.Errorf("%s: ...: %w", methodGrid, ErrTooFewVertices)

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
