// SPDX-License-Identifier: MIT
package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/tollpath/internal/cache"
	"github.com/katalvlaran/tollpath/internal/planner"
	"github.com/katalvlaran/tollpath/matrix"
	"github.com/katalvlaran/tollpath/search"
)

type vertexDTO struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type graphResponse struct {
	OK       bool                  `json:"ok"`
	Vertices []vertexDTO           `json:"vertices"`
	Edges    []matrix.EdgeListItem `json:"edges"`
}

func (s *Server) getGraph(c *gin.Context) {
	s.mu.RLock()
	vs := s.graph.Vertices()
	edges := matrix.ToEdgeList(s.graph)
	s.mu.RUnlock()

	out := graphResponse{OK: true, Vertices: make([]vertexDTO, 0, len(vs)), Edges: edges}
	for _, v := range vs {
		out.Vertices = append(out.Vertices, vertexDTO{ID: v.ID, X: v.X, Y: v.Y})
	}
	c.JSON(http.StatusOK, out)
}

type adjustmentDTO struct {
	Begin      string  `json:"begin"`
	End        string  `json:"end"`
	Weight     float64 `json:"weight"`
	Multiplier float64 `json:"multiplier"`
	Discounted float64 `json:"discounted"`
	Applied    bool    `json:"applied"`
}

// RouteResponse is the body of a successful POST /api/v1/route.
type RouteResponse struct {
	OK         bool           `json:"ok"`
	Algorithm  string         `json:"algorithm"`
	Path       []string       `json:"path"`
	Cost       float64        `json:"cost"`
	Found      bool           `json:"found"`
	Visited    int            `json:"visited"`
	Adjustment *adjustmentDTO `json:"adjustment,omitempty"`
}

// HeaderCache reports HIT or MISS for cacheable route queries.
const HeaderCache = "X-Cache"

func (s *Server) route(c *gin.Context) {
	var q planner.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	q.Normalize()

	ctx := c.Request.Context()
	log := s.log.With(slog.String("request_id", RequestIDFrom(ctx)))
	opts := []search.Option{search.WithLogger(log), search.WithMaxCost(s.maxCost)}

	if q.Mutates() {
		s.mu.Lock()
		res, err := planner.Plan(s.graph, q, opts...)
		if err == nil && res.Adjustment != nil && s.cache != nil {
			s.fingerprint = matrix.Fingerprint(s.graph)
		}
		s.mu.Unlock()
		s.respond(c, log, q, res, err)
		return
	}

	s.mu.RLock()
	key := ""
	if s.cache != nil {
		digest, err := s.queryDigest(q)
		if err != nil {
			s.mu.RUnlock()
			s.respond(c, log, q, search.Result{}, err)
			return
		}
		key = cache.Key(s.fingerprint, digest)
		if b, ok, err := s.cache.Get(ctx, key); err != nil {
			log.Warn("route cache get failed", slog.Any("err", err))
		} else if ok {
			s.mu.RUnlock()
			c.Header(HeaderCache, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", b)
			return
		}
	}
	res, err := planner.Plan(s.graph, q, opts...)
	s.mu.RUnlock()

	if err != nil || key == "" {
		s.respond(c, log, q, res, err)
		return
	}
	b, err := json.Marshal(newRouteResponse(q, res))
	if err != nil {
		s.respond(c, log, q, res, fmt.Errorf("%w: %w", search.ErrInternal, err))
		return
	}
	if err = s.cache.Set(ctx, key, b); err != nil {
		log.Warn("route cache set failed", slog.Any("err", err))
	}
	c.Header(HeaderCache, "MISS")
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}

func (s *Server) respond(c *gin.Context, log *slog.Logger, q planner.Query, res search.Result, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		if !errors.Is(err, search.ErrInternal) {
			status = http.StatusBadRequest
		}
		log.Warn("route failed", slog.Any("err", err))
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newRouteResponse(q, res))
}

func newRouteResponse(q planner.Query, res search.Result) RouteResponse {
	out := RouteResponse{
		OK:        true,
		Algorithm: q.Algorithm,
		Path:      res.Path,
		Cost:      res.Cost,
		Found:     res.Found,
		Visited:   len(res.Visited),
	}
	if a := res.Adjustment; a != nil {
		out.Adjustment = &adjustmentDTO{
			Begin: a.Begin, End: a.End,
			Weight: a.Weight, Multiplier: a.Multiplier, Discounted: a.Discounted,
			Applied: q.Mutates(),
		}
	}

	return out
}

// queryDigest identifies a normalized read-only query under this server's
// search settings.
func (s *Server) queryDigest(q planner.Query) (string, error) {
	q.Apply = false
	if q.Coupon != nil {
		cq := *q.Coupon
		cq.Vertices = slices.Clone(cq.Vertices)
		slices.Sort(cq.Vertices)
		cq.Vertices = slices.Compact(cq.Vertices)
		q.Coupon = &cq
	}
	b, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("%w: digest query: %w", search.ErrInternal, err)
	}
	h := sha256.New()
	h.Write(b)
	h.Write([]byte(strconv.FormatFloat(s.maxCost, 'g', -1, 64)))

	return hex.EncodeToString(h.Sum(nil)), nil
}
