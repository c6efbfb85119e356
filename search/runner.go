// SPDX-License-Identifier: MIT
// File: runner.go
// Role: the relaxation loop shared by Dijkstra, AStar and AStarCoupon.
//
// Algorithm:
//  1. Copy each vertex out of the graph the first time the run touches it
//     and reuse that copy afterwards, so a concurrent writer never changes a
//     vertex mid-run. Untouched vertices are never copied.
//  2. Seed the queue with begin at priority h(begin, end).
//  3. Pop the minimum; stop when it is the goal.
//  4. Relax each outgoing arc: candidate = cost[u] + w. On strict
//     improvement record (cost, prev) and push or update the neighbor with
//     priority candidate + h(neighbor, goal).
//
// With h ≡ 0 the popped priority equals cost[u], which is Dijkstra.
package search

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/tollpath/core"
	"github.com/katalvlaran/tollpath/pq"
)

// runner holds the mutable state of one search execution.
type runner struct {
	g    *core.Graph
	opts Options
	log  *slog.Logger

	begin, end string
	h          Heuristic
	coupon     *Coupon

	idx      map[string]*core.Vertex // touched vertices: ID → copy
	cost     map[string]float64      // best accumulated cost; absent ⇒ +Inf
	prev     map[string]string       // predecessor on the best path
	cand     map[string]*Adjustment  // lightest eligible edge on the best path
	q        *pq.Queue
	expanded int
}

func newRunner(g *core.Graph, begin, end string, h Heuristic, c *Coupon, opts Options) *runner {
	r := &runner{
		g:     g,
		opts:  opts,
		log:   opts.Logger,
		begin: begin,
		end:   end,
		h:     h,
		idx:   make(map[string]*core.Vertex),
		cost:  make(map[string]float64),
		prev:  make(map[string]string),
		q:     pq.New(),
	}
	if c != nil {
		r.coupon = c
		r.cand = make(map[string]*Adjustment)
	}

	return r
}

// run executes the search and assembles the Result.
func (r *runner) run(algo string) (Result, error) {
	log := r.log.With(slog.String("algo", algo), slog.String("begin", r.begin), slog.String("end", r.end))

	start, okBegin := r.vertex(r.begin)
	goal, okEnd := r.vertex(r.end)
	if !okBegin || !okEnd {
		log.Debug("endpoint absent", slog.Bool("begin_ok", okBegin), slog.Bool("end_ok", okEnd))

		return emptyResult(), nil
	}

	est, err := r.estimate(start, goal)
	if err != nil {
		return emptyResult(), err
	}
	r.cost[r.begin] = 0
	r.q.Push(est, r.begin)

	found, err := r.process(goal)
	if err != nil {
		return emptyResult(), err
	}

	visited := r.q.VisitOrder()
	if r.opts.MarkVisited {
		r.g.MarkVisited(visited...)
	}
	if !found {
		log.Debug("goal unreachable", slog.Int("visited", len(visited)), slog.Int("expanded", r.expanded))
		res := emptyResult()
		res.Visited = visited
		res.Expanded = r.expanded

		return res, nil
	}

	path, cost, err := r.g.BuildPath(r.prev, r.begin, r.end)
	if err != nil {
		return emptyResult(), fmt.Errorf("%w: %w", ErrInternal, err)
	}

	res := Result{
		Path:     path,
		Cost:     cost,
		Found:    true,
		Visited:  visited,
		Expanded: r.expanded,
	}
	if adj := r.adjustment(); adj != nil {
		res.Adjustment = adj
		res.Cost -= adj.Savings()
		if r.opts.ApplyAdjustment {
			if err = adj.Apply(r.g); err != nil {
				return emptyResult(), err
			}
		}
		log.Debug("coupon realized", slog.Any("adjustment", *adj))
	}
	log.Debug("path found",
		slog.Int("hops", len(path)-1),
		slog.Float64("cost", res.Cost),
		slog.Int("visited", len(visited)),
		slog.Int("expanded", r.expanded))

	return res, nil
}

// process is the main loop. It reports whether the goal was extracted.
func (r *runner) process(goal *core.Vertex) (bool, error) {
	for !r.q.Empty() {
		_, u, err := r.q.Pop()
		if err != nil {
			// Empty() was false, so the queue broke its own contract.
			return false, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		if u == r.end {
			return true, nil
		}
		if err = r.relax(u, goal); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax examines every outgoing arc of u.
func (r *runner) relax(u string, goal *core.Vertex) error {
	var err error
	base := r.cost[u]
	r.idx[u].Range(func(v string, w float64) bool {
		r.expanded++
		candidate := base + w
		if candidate > r.opts.MaxCost || candidate >= r.costOf(v) {
			return true
		}
		nb, ok := r.vertex(v)
		if !ok {
			return true
		}
		est, herr := r.estimate(nb, goal)
		if herr != nil {
			err = herr

			return false
		}
		r.cost[v] = candidate
		r.prev[v] = u
		if r.coupon != nil {
			r.carryCandidate(u, v, w)
		}

		priority := candidate + est
		if r.q.Contains(v) {
			if uerr := r.q.Update(priority, v); uerr != nil {
				err = fmt.Errorf("%w: %w", ErrInternal, uerr)

				return false
			}
		} else {
			r.q.Push(priority, v)
		}

		return true
	})

	return err
}

// vertex returns the run's copy of id, fetching it on first use.
func (r *runner) vertex(id string) (*core.Vertex, bool) {
	if v, ok := r.idx[id]; ok {
		return v, true
	}
	v, ok := r.g.Vertex(id)
	if !ok {
		return nil, false
	}
	r.idx[id] = &v

	return &v, true
}

func (r *runner) costOf(id string) float64 {
	if c, ok := r.cost[id]; ok {
		return c
	}

	return math.Inf(1)
}

// estimate evaluates the heuristic, rejecting values the queue cannot order.
func (r *runner) estimate(a, goal *core.Vertex) (float64, error) {
	h := r.h(*a, *goal)
	if h < 0 || math.IsNaN(h) {
		return 0, fmt.Errorf("%w: h(%s, %s) = %v", ErrBadHeuristic, a.ID, goal.ID, h)
	}

	return h, nil
}

// carryCandidate gives v the lightest eligible edge on its new best path:
// u's candidate, replaced by u→v when that edge is eligible and strictly
// lighter. On ties the edge closer to begin wins.
func (r *runner) carryCandidate(u, v string, w float64) {
	best := r.cand[u]
	if r.coupon.Eligible(u) || r.coupon.Eligible(v) {
		if best == nil || w < best.Weight {
			best = &Adjustment{Begin: u, End: v, Weight: w}
		}
	}
	if best == nil {
		delete(r.cand, v)

		return
	}
	r.cand[v] = best
}

// adjustment returns the realized discount for the goal, or nil when there
// is no coupon, no eligible edge on the path, or the multiplier would not
// lower the cost.
func (r *runner) adjustment() *Adjustment {
	if r.coupon == nil || r.coupon.Multiplier >= 1 {
		return nil
	}
	c, ok := r.cand[r.end]
	if !ok {
		return nil
	}
	// BuildPath read live weights; price the discount from the same graph.
	w := c.Weight
	if e, ok := r.g.Edge(c.Begin, c.End); ok {
		w = e.Weight
	}

	return &Adjustment{
		Begin:      c.Begin,
		End:        c.End,
		Weight:     w,
		Multiplier: r.coupon.Multiplier,
		Discounted: w * r.coupon.Multiplier,
	}
}
