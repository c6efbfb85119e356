// SPDX-License-Identifier: MIT
package search

import "github.com/katalvlaran/tollpath/core"

// AStarCoupon runs AStar and prices coupon c against the path it finds.
//
// The route is chosen on undiscounted weights. Along that route the lightest
// edge touching an eligible vertex is selected (the one nearest begin on
// ties) and, when c.Multiplier < 1, reported as Result.Adjustment with
// Result.Cost lowered accordingly. A coupon never applies to an edge the
// route does not use, and a multiplier >= 1 leaves the result untouched.
//
// The graph is read-only unless WithApplyAdjustment is given; then the
// discounted weight is written back and later searches see it.
//
// Errors:
//   - ErrNilGraph, ErrNilHeuristic, ErrBadMaxCost: as for AStar.
//   - ErrNilCoupon:     c.Eligible is nil.
//   - ErrBadMultiplier: c.Multiplier is negative, NaN or infinite.
//   - core.ErrEdgeNotFound (wrapped): the adjusted edge vanished before
//     WithApplyAdjustment could write it.
func AStarCoupon(g *core.Graph, begin, end string, h Heuristic, c Coupon, opts ...Option) (Result, error) {
	if g == nil {
		return emptyResult(), ErrNilGraph
	}
	if h == nil {
		return emptyResult(), ErrNilHeuristic
	}
	if err := c.validate(); err != nil {
		return emptyResult(), err
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return emptyResult(), err
	}

	return newRunner(g, begin, end, h, &c, cfg).run("coupon")
}
