// SPDX-License-Identifier: MIT
// Package server exposes a loaded graph over HTTP.
//
//	GET  /health          liveness and graph size
//	GET  /api/v1/graph    vertices with positions, edges
//	POST /api/v1/route    run a planner.Query
//
// Read-only searches run concurrently. Queries that apply a coupon take the
// server lock exclusively so no search observes a half-applied discount.
// With a RouteCache configured, read-only answers are cached under the
// graph fingerprint, which is recomputed after every applied discount.
package server

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/tollpath/core"
	"github.com/katalvlaran/tollpath/matrix"
)

const ServiceName = "tollpath"

const shutdownTimeout = 5 * time.Second

// RouteCache stores serialized route responses. Implemented by
// cache.RouteCache.
type RouteCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type Server struct {
	mu          sync.RWMutex // exclusive for weight-changing queries
	graph       *core.Graph
	fingerprint string // matrix.Fingerprint(graph); guarded by mu
	log         *slog.Logger
	version     string
	maxCost     float64
	cache       RouteCache
	limiter     *rate.Limiter
	corsOrigins []string
	engine      *gin.Engine
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

func WithVersion(v string) Option { return func(s *Server) { s.version = v } }

// WithMaxCost caps every search; +Inf (the default) disables the cap.
func WithMaxCost(c float64) Option { return func(s *Server) { s.maxCost = c } }

// WithCache enables caching of read-only route answers.
func WithCache(c RouteCache) Option { return func(s *Server) { s.cache = c } }

// WithRateLimit limits /api/v1 to perSecond requests with the given burst.
// A non-positive perSecond disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(s *Server) {
		if perSecond > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// WithCORS allows browser requests from origins ("*" for any).
func WithCORS(origins ...string) Option {
	return func(s *Server) { s.corsOrigins = origins }
}

// New builds a Server around g. g must not be nil.
func New(g *core.Graph, opts ...Option) *Server {
	s := &Server{
		graph:   g,
		log:     slog.Default(),
		version: "dev",
		maxCost: math.Inf(1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache != nil {
		s.fingerprint = matrix.Fingerprint(g)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), RequestID(s.log))
	if len(s.corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  s.corsOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Content-Type", HeaderRequestID},
			ExposeHeaders: []string{HeaderRequestID, HeaderCache},
			MaxAge:        12 * time.Hour,
		}))
	}
	s.RegisterRoutes(r)
	s.engine = r

	return s
}

func (s *Server) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", s.health)
	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	if s.limiter != nil {
		v1.Use(RateLimit(s.limiter))
	}
	v1.GET("/graph", s.getGraph)
	v1.POST("/route", s.route)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", addr), slog.String("version", s.version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}
