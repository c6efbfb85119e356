// SPDX-License-Identifier: MIT
// Package planner turns a named route query into a search call. It is the
// single place where algorithm and heuristic names are resolved, shared by
// the CLI and the HTTP service.
package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tollpath/core"
	"github.com/katalvlaran/tollpath/search"
)

// Algorithm names accepted by Plan.
const (
	AlgoDijkstra = "dijkstra"
	AlgoAStar    = "astar"
	AlgoCoupon   = "coupon"
)

// Heuristic names accepted by Plan.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicTaxicab   = "taxicab"
	HeuristicZero      = "zero"
)

var (
	ErrUnknownAlgorithm = errors.New("planner: unknown algorithm")
	ErrUnknownHeuristic = errors.New("planner: unknown heuristic")
	ErrMissingEndpoint  = errors.New("planner: from and to are required")
)

// CouponQuery selects eligible vertices by ID.
type CouponQuery struct {
	Vertices   []string `json:"vertices"`
	Multiplier float64  `json:"multiplier"`
}

// Query is one route request.
type Query struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	Algorithm string       `json:"algorithm"`
	Heuristic string       `json:"heuristic"`
	Coupon    *CouponQuery `json:"coupon,omitempty"`
	// Apply writes a realized coupon discount back into the graph.
	Apply bool `json:"apply"`
}

// Normalize fills defaults: algorithm "astar" when a heuristic is named,
// "coupon" when a coupon is given, "dijkstra" otherwise; heuristic
// "euclidean" for the heuristic algorithms.
func (q *Query) Normalize() {
	q.From = strings.TrimSpace(q.From)
	q.To = strings.TrimSpace(q.To)
	q.Algorithm = strings.ToLower(strings.TrimSpace(q.Algorithm))
	q.Heuristic = strings.ToLower(strings.TrimSpace(q.Heuristic))
	if q.Algorithm == "" {
		switch {
		case q.Coupon != nil:
			q.Algorithm = AlgoCoupon
		case q.Heuristic != "":
			q.Algorithm = AlgoAStar
		default:
			q.Algorithm = AlgoDijkstra
		}
	}
	if q.Heuristic == "" && q.Algorithm != AlgoDijkstra {
		q.Heuristic = HeuristicEuclidean
	}
}

// Mutates reports whether running q may change edge weights.
func (q Query) Mutates() bool { return q.Apply && q.Algorithm == AlgoCoupon }

// ParseHeuristic resolves a heuristic name.
func ParseHeuristic(name string) (search.Heuristic, error) {
	switch strings.ToLower(name) {
	case HeuristicEuclidean:
		return search.Euclidean, nil
	case HeuristicTaxicab:
		return search.Taxicab, nil
	case HeuristicZero:
		return search.Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// Plan normalizes q and runs the selected search on g. extra options are
// appended after those derived from q.
func Plan(g *core.Graph, q Query, extra ...search.Option) (search.Result, error) {
	q.Normalize()
	if q.From == "" || q.To == "" {
		return search.Result{Path: []string{}}, ErrMissingEndpoint
	}

	opts := append([]search.Option(nil), extra...)
	switch q.Algorithm {
	case AlgoDijkstra:
		return search.Dijkstra(g, q.From, q.To, opts...)
	case AlgoAStar, AlgoCoupon:
	default:
		return search.Result{Path: []string{}}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, q.Algorithm)
	}

	h, err := ParseHeuristic(q.Heuristic)
	if err != nil {
		return search.Result{Path: []string{}}, err
	}
	if q.Algorithm == AlgoAStar {
		return search.AStar(g, q.From, q.To, h, opts...)
	}

	var c search.Coupon
	if q.Coupon != nil {
		c = search.VertexCoupon(q.Coupon.Multiplier, q.Coupon.Vertices...)
	} else {
		c = search.VertexCoupon(1)
	}
	if q.Apply {
		opts = append(opts, search.WithApplyAdjustment())
	}

	return search.AStarCoupon(g, q.From, q.To, h, c, opts...)
}
