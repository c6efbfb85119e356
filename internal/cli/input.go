// SPDX-License-Identifier: MIT
// Package cli canonicalizes tollpath command-line input into an Invocation
// and executes it.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/tollpath/internal/config"
	"github.com/katalvlaran/tollpath/internal/planner"
)

// Exit codes.
const (
	ExitSuccess           = 0
	ExitNoPath            = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
	ExitInternalError     = 4
)

// Invocation is a fully validated command line.
type Invocation struct {
	GraphPath     string
	PositionsPath string
	Query         planner.Query
	MaxCost       float64
	Serve         bool
	Addr          string
	Version       string
	LogLevel      slog.Level

	// Service settings, used with Serve only.
	RedisAddr   string
	CacheTTL    time.Duration
	RateLimit   float64
	RateBurst   int
	CORSOrigins []string
}

// InvocationError carries the exit code for a rejected command line.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}

	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses args. Values from cfg (environment and .env) act
// as defaults that flags override; cfg may be nil.
func ParseInvocation(args []string, cfg *config.Config) (Invocation, error) {
	if cfg == nil {
		cfg = &config.Config{}
		cfg.Server.Addr = ":8080"
		cfg.Graph.MaxCost = math.Inf(1)
		cfg.Cache.TTL = 10 * time.Minute
	}

	fs := flag.NewFlagSet("tollpath", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var (
		inv        Invocation
		couponIDs  string
		multiplier float64
		maxCost    float64
		logLevel   string
	)
	fs.StringVar(&inv.GraphPath, "graph", cfg.Graph.CSVPath, "Adjacency matrix CSV. Required.")
	fs.StringVar(&inv.PositionsPath, "positions", cfg.Graph.PositionsPath, "YAML vertex positions (optional).")
	fs.StringVar(&inv.Query.From, "from", "", "Start vertex ID.")
	fs.StringVar(&inv.Query.To, "to", "", "Goal vertex ID.")
	fs.StringVar(&inv.Query.Algorithm, "algo", "", "dijkstra|astar|coupon")
	fs.StringVar(&inv.Query.Heuristic, "heuristic", "", "euclidean|taxicab|zero")
	fs.StringVar(&couponIDs, "coupon-vertices", "", "Comma-separated vertex IDs a coupon applies to.")
	fs.Float64Var(&multiplier, "coupon-multiplier", 0.5, "Coupon cost multiplier.")
	fs.BoolVar(&inv.Query.Apply, "apply", false, "Write the coupon discount into the graph (with -serve: per request).")
	fs.Float64Var(&maxCost, "max-cost", cfg.Graph.MaxCost, "Do not explore beyond this accumulated cost.")
	fs.BoolVar(&inv.Serve, "serve", false, "Serve the HTTP API instead of answering one query.")
	fs.StringVar(&inv.Addr, "addr", cfg.Server.Addr, "Listen address for -serve.")
	fs.StringVar(&logLevel, "log-level", cfg.App.LogLevel, "debug|info|warn|error")
	fs.StringVar(&inv.RedisAddr, "redis", cfg.Cache.RedisAddr, "Redis address for the route cache (with -serve).")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}
	if inv.GraphPath == "" {
		return Invocation{}, invalidInvocationf("-graph is required")
	}
	if maxCost < 0 || math.IsNaN(maxCost) {
		return Invocation{}, invalidInvocationf("-max-cost must be non-negative (got %v)", maxCost)
	}
	inv.MaxCost = maxCost
	if logLevel != "" {
		lvl, err := config.ParseLevel(logLevel)
		if err != nil {
			return Invocation{}, invalidInvocationf("invalid -log-level %q", logLevel)
		}
		inv.LogLevel = lvl
	}
	inv.Version = cfg.App.Version
	inv.CacheTTL = cfg.Cache.TTL
	inv.RateLimit = cfg.Server.RateLimit
	inv.RateBurst = cfg.Server.RateBurst
	inv.CORSOrigins = cfg.Server.CORSOrigins

	if inv.Serve {
		if inv.Addr == "" {
			return Invocation{}, invalidInvocationf("-addr is required with -serve")
		}
		if inv.RedisAddr != "" && inv.CacheTTL <= 0 {
			return Invocation{}, invalidInvocationf("cache TTL must be positive with -redis")
		}

		return inv, nil
	}

	if couponIDs != "" {
		var ids []string
		for _, id := range strings.Split(couponIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		inv.Query.Coupon = &planner.CouponQuery{Vertices: ids, Multiplier: multiplier}
	}
	inv.Query.Normalize()
	if inv.Query.From == "" || inv.Query.To == "" {
		return Invocation{}, invalidInvocationf("-from and -to are required")
	}
	switch inv.Query.Algorithm {
	case planner.AlgoDijkstra, planner.AlgoAStar, planner.AlgoCoupon:
	default:
		return Invocation{}, invalidInvocationf("unknown -algo %q", inv.Query.Algorithm)
	}
	if inv.Query.Heuristic != "" {
		if _, err := planner.ParseHeuristic(inv.Query.Heuristic); err != nil {
			return Invocation{}, invalidInvocationf("unknown -heuristic %q", inv.Query.Heuristic)
		}
	}

	return inv, nil
}
