// SPDX-License-Identifier: MIT
// File: types.go
// Role: result, adjustment, coupon and heuristic types plus sentinel errors
// for the search package.
package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/tollpath/core"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a search.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNilHeuristic indicates that AStar or AStarCoupon received a nil Heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrNilCoupon indicates a coupon without an eligibility predicate.
	ErrNilCoupon = errors.New("search: coupon predicate is nil")

	// ErrBadMultiplier indicates a negative, NaN or infinite coupon multiplier.
	ErrBadMultiplier = errors.New("search: coupon multiplier must be finite and non-negative")

	// ErrBadHeuristic indicates a heuristic returned a negative or NaN estimate.
	ErrBadHeuristic = errors.New("search: heuristic must return a non-negative number")

	// ErrBadMaxCost indicates a negative or NaN cost cap.
	ErrBadMaxCost = errors.New("search: max cost must be non-negative")

	// ErrInternal wraps a broken queue or predecessor contract. It signals a
	// bug in this package, never bad input.
	ErrInternal = errors.New("search: internal error")
)

// Heuristic estimates the remaining cost from a to the goal b. It must be
// non-negative and not NaN (violations fail the search with
// ErrBadHeuristic); A* returns optimal paths only when it never
// overestimates.
type Heuristic func(a, b core.Vertex) float64

// Standard heuristics.
var (
	// Euclidean is the straight-line distance between vertex positions.
	Euclidean Heuristic = core.Euclidean

	// Taxicab is the L1 distance between vertex positions.
	Taxicab Heuristic = core.Taxicab

	// Zero turns A* into Dijkstra.
	Zero Heuristic = func(core.Vertex, core.Vertex) float64 { return 0 }
)

// Result is the outcome of one search.
//
// When the goal is unreachable or either endpoint is absent, Path is empty,
// Cost is 0 and Found is false. Callers that only care about the path can
// keep testing len(Path) == 0.
type Result struct {
	// Path lists vertex IDs from begin to end inclusive.
	Path []string

	// Cost is the live weight of Path, with Adjustment applied if present.
	Cost float64

	// Found reports whether the goal was reached.
	Found bool

	// Visited lists extracted vertex IDs in extraction order.
	Visited []string

	// Expanded counts edge relaxations attempted.
	Expanded int

	// Adjustment is the coupon discount realized on Path, or nil.
	Adjustment *Adjustment
}

func emptyResult() Result {
	return Result{Path: []string{}}
}

// Coupon is a one-time multiplicative discount on a single edge of the
// discovered path. An edge u→v qualifies when Eligible(u) or Eligible(v).
type Coupon struct {
	Eligible   func(id string) bool
	Multiplier float64
}

// VertexCoupon returns a coupon whose predicate accepts exactly the listed IDs.
func VertexCoupon(multiplier float64, ids ...string) Coupon {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return Coupon{
		Eligible: func(id string) bool {
			_, ok := set[id]

			return ok
		},
		Multiplier: multiplier,
	}
}

func (c Coupon) validate() error {
	if c.Eligible == nil {
		return ErrNilCoupon
	}
	if c.Multiplier < 0 || math.IsNaN(c.Multiplier) || math.IsInf(c.Multiplier, 0) {
		return fmt.Errorf("%w: %v", ErrBadMultiplier, c.Multiplier)
	}

	return nil
}

// Adjustment describes a discount on one directed edge. It is a value the
// caller decides to apply; searches never mutate weights unless run with
// WithApplyAdjustment.
type Adjustment struct {
	Begin      string
	End        string
	Weight     float64 // weight before the discount
	Multiplier float64
	Discounted float64 // Weight * Multiplier
}

// Savings is the cost removed from the path by the discount.
func (a Adjustment) Savings() float64 { return a.Weight - a.Discounted }

// Apply overwrites the edge weight in g with the discounted value.
//
// Errors:
//   - core.ErrEdgeNotFound: the edge no longer exists.
func (a Adjustment) Apply(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.SetWeight(a.Begin, a.End, a.Discounted); err != nil {
		return fmt.Errorf("search: apply %s→%s: %w", a.Begin, a.End, err)
	}

	return nil
}

// LogValue implements slog.LogValuer.
func (a Adjustment) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("begin", a.Begin),
		slog.String("end", a.End),
		slog.Float64("weight", a.Weight),
		slog.Float64("discounted", a.Discounted),
	)
}
