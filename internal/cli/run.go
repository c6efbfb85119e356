// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tollpath/core"
	"github.com/katalvlaran/tollpath/internal/cache"
	"github.com/katalvlaran/tollpath/internal/planner"
	"github.com/katalvlaran/tollpath/internal/server"
	"github.com/katalvlaran/tollpath/matrix"
	"github.com/katalvlaran/tollpath/search"
)

// Result is the outcome of Execute.
type Result struct {
	ExitCode int
}

// Output is the JSON document printed for a single query.
type Output struct {
	From       string            `json:"from"`
	To         string            `json:"to"`
	Algorithm  string            `json:"algorithm"`
	Heuristic  string            `json:"heuristic,omitempty"`
	Path       []string          `json:"path"`
	Cost       float64           `json:"cost"`
	Found      bool              `json:"found"`
	Visited    int               `json:"visited"`
	Adjustment *AdjustmentOutput `json:"adjustment,omitempty"`
}

// AdjustmentOutput is the JSON form of search.Adjustment.
type AdjustmentOutput struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Weight     float64 `json:"weight"`
	Multiplier float64 `json:"multiplier"`
	Discounted float64 `json:"discounted"`
}

func adjustmentOutput(a *search.Adjustment) *AdjustmentOutput {
	if a == nil {
		return nil
	}

	return &AdjustmentOutput{From: a.Begin, To: a.End, Weight: a.Weight, Multiplier: a.Multiplier, Discounted: a.Discounted}
}

// Execute loads the graph and either answers inv.Query on stdout or serves
// the HTTP API until ctx is cancelled.
func Execute(ctx context.Context, inv Invocation, stdout io.Writer, log *slog.Logger) (Result, error) {
	g, err := loadGraph(inv)
	if err != nil {
		return Result{ExitCode: ExitConfigError}, err
	}
	log.Info("graph loaded",
		slog.String("path", inv.GraphPath),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()))

	if inv.Serve {
		return serve(ctx, inv, g, log)
	}

	res, err := planner.Plan(g, inv.Query, search.WithLogger(log), search.WithMaxCost(inv.MaxCost))
	if err != nil {
		if errors.Is(err, search.ErrInternal) {
			return Result{ExitCode: ExitInternalError}, err
		}

		return Result{ExitCode: ExitInvalidInvocation}, err
	}
	if inv.Query.Mutates() && res.Adjustment != nil {
		if err = matrix.SaveCSV(inv.GraphPath, g); err != nil {
			return Result{ExitCode: ExitConfigError}, fmt.Errorf("save discounted graph: %w", err)
		}
		log.Info("discount written", slog.Any("adjustment", *res.Adjustment))
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(Output{
		From:       inv.Query.From,
		To:         inv.Query.To,
		Algorithm:  inv.Query.Algorithm,
		Heuristic:  inv.Query.Heuristic,
		Path:       res.Path,
		Cost:       res.Cost,
		Found:      res.Found,
		Visited:    len(res.Visited),
		Adjustment: adjustmentOutput(res.Adjustment),
	}); err != nil {
		return Result{ExitCode: ExitInternalError}, err
	}
	if !res.Found {
		return Result{ExitCode: ExitNoPath}, nil
	}

	return Result{ExitCode: ExitSuccess}, nil
}

func serve(ctx context.Context, inv Invocation, g *core.Graph, log *slog.Logger) (Result, error) {
	opts := []server.Option{
		server.WithLogger(log),
		server.WithVersion(inv.Version),
		server.WithMaxCost(inv.MaxCost),
		server.WithRateLimit(inv.RateLimit, inv.RateBurst),
		server.WithCORS(inv.CORSOrigins...),
	}
	if inv.RedisAddr != "" {
		rc, err := cache.Dial(ctx, inv.RedisAddr, inv.CacheTTL)
		if err != nil {
			return Result{ExitCode: ExitConfigError}, err
		}
		defer func() {
			if cerr := rc.Close(); cerr != nil {
				log.Warn("close route cache", slog.Any("err", cerr))
			}
		}()
		log.Info("route cache enabled", slog.String("redis", inv.RedisAddr), slog.Duration("ttl", inv.CacheTTL))
		opts = append(opts, server.WithCache(rc))
	}

	if err := server.New(g, opts...).Run(ctx, inv.Addr); err != nil {
		return Result{ExitCode: ExitInternalError}, err
	}

	return Result{ExitCode: ExitSuccess}, nil
}

func loadGraph(inv Invocation) (*core.Graph, error) {
	g, err := matrix.LoadCSV(inv.GraphPath)
	if err != nil {
		return nil, err
	}
	if inv.PositionsPath == "" {
		return g, nil
	}
	ps, err := matrix.LoadPositions(inv.PositionsPath)
	if err != nil {
		return nil, err
	}
	if _, err = matrix.ApplyPositions(g, ps, false); err != nil {
		return nil, err
	}

	return g, nil
}
