// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollpath/internal/config"
	"github.com/katalvlaran/tollpath/internal/planner"
	"github.com/katalvlaran/tollpath/matrix"
)

const tollCSV = `,home,toll,work,long
home,None,4,None,3
toll,None,None,4,None
work,None,None,None,None
long,None,None,None,7
`

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func quiet() *slog.Logger { return slog.New(slog.DiscardHandler) }

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ie *InvocationError
	require.True(t, errors.As(err, &ie), "expected InvocationError, got %v", err)

	return ie.ExitCode
}

func TestParseInvocation_Defaults(t *testing.T) {
	inv, err := ParseInvocation([]string{"-graph", "g.csv", "-from", "a", "-to", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "g.csv", inv.GraphPath)
	assert.Equal(t, planner.AlgoDijkstra, inv.Query.Algorithm)
	assert.Nil(t, inv.Query.Coupon)
	assert.True(t, math.IsInf(inv.MaxCost, 1))
	assert.Equal(t, slog.LevelInfo, inv.LogLevel)
}

func TestParseInvocation_ConfigDefaultsAndOverrides(t *testing.T) {
	cfg := &config.Config{}
	cfg.Graph.CSVPath = "env.csv"
	cfg.Graph.MaxCost = 50
	cfg.Server.Addr = ":9999"
	cfg.App.LogLevel = "debug"
	cfg.App.Version = "1.2.3"
	cfg.Cache.RedisAddr = "localhost:6379"
	cfg.Cache.TTL = time.Minute
	cfg.Server.RateLimit = 5
	cfg.Server.RateBurst = 2
	cfg.Server.CORSOrigins = []string{"*"}

	inv, err := ParseInvocation([]string{"-serve"}, cfg)
	require.NoError(t, err)
	assert.True(t, inv.Serve)
	assert.Equal(t, "env.csv", inv.GraphPath)
	assert.Equal(t, ":9999", inv.Addr)
	assert.Equal(t, 50.0, inv.MaxCost)
	assert.Equal(t, slog.LevelDebug, inv.LogLevel)
	assert.Equal(t, "1.2.3", inv.Version)
	assert.Equal(t, "localhost:6379", inv.RedisAddr)
	assert.Equal(t, time.Minute, inv.CacheTTL)
	assert.Equal(t, 5.0, inv.RateLimit)
	assert.Equal(t, 2, inv.RateBurst)
	assert.Equal(t, []string{"*"}, inv.CORSOrigins)

	inv, err = ParseInvocation([]string{"-graph", "flag.csv", "-from", "a", "-to", "b", "-max-cost", "3"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "flag.csv", inv.GraphPath)
	assert.Equal(t, 3.0, inv.MaxCost)
}

func TestParseInvocation_Coupon(t *testing.T) {
	inv, err := ParseInvocation([]string{
		"-graph", "g.csv", "-from", "a", "-to", "b",
		"-coupon-vertices", " x, y ,,", "-coupon-multiplier", "0.25", "-apply",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, inv.Query.Coupon)
	assert.Equal(t, []string{"x", "y"}, inv.Query.Coupon.Vertices)
	assert.Equal(t, 0.25, inv.Query.Coupon.Multiplier)
	assert.Equal(t, planner.AlgoCoupon, inv.Query.Algorithm)
	assert.Equal(t, planner.HeuristicEuclidean, inv.Query.Heuristic)
	assert.True(t, inv.Query.Mutates())
}

func TestParseInvocation_Invalid(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":   {"-graph", "g.csv", "-nope"},
		"positional":     {"-graph", "g.csv", "-from", "a", "-to", "b", "extra"},
		"missing graph":  {"-from", "a", "-to", "b"},
		"missing to":     {"-graph", "g.csv", "-from", "a"},
		"bad algo":       {"-graph", "g.csv", "-from", "a", "-to", "b", "-algo", "bfs"},
		"bad heuristic":  {"-graph", "g.csv", "-from", "a", "-to", "b", "-heuristic", "chebyshev"},
		"negative cap":   {"-graph", "g.csv", "-from", "a", "-to", "b", "-max-cost", "-1"},
		"bad log level":  {"-graph", "g.csv", "-from", "a", "-to", "b", "-log-level", "loud"},
		"serve no addr":  {"-graph", "g.csv", "-serve", "-addr", ""},
		"bad multiplier": {"-graph", "g.csv", "-coupon-multiplier", "half"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInvocation(args, nil)
			require.Error(t, err)
			assert.Equal(t, ExitInvalidInvocation, exitCode(t, err))
		})
	}
}

func TestInvocationError_NilSafe(t *testing.T) {
	var ie *InvocationError
	assert.Empty(t, ie.Error())
}

func execute(t *testing.T, args ...string) (Result, Output, error) {
	t.Helper()
	inv, err := ParseInvocation(args, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := Execute(context.Background(), inv, &out, quiet())
	var doc Output
	if out.Len() > 0 {
		require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	}

	return res, doc, err
}

func TestExecute_Dijkstra(t *testing.T) {
	path := writeGraph(t, tollCSV)
	res, doc, err := execute(t, "-graph", path, "-from", "home", "-to", "work")
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, res.ExitCode)
	assert.True(t, doc.Found)
	assert.Equal(t, []string{"home", "toll", "work"}, doc.Path)
	assert.Equal(t, 8.0, doc.Cost)
	assert.Nil(t, doc.Adjustment)
}

func TestExecute_CouponDoesNotTouchFileWithoutApply(t *testing.T) {
	path := writeGraph(t, tollCSV)
	res, doc, err := execute(t, "-graph", path, "-from", "home", "-to", "work",
		"-coupon-vertices", "toll", "-coupon-multiplier", "0.5", "-heuristic", "zero")
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, res.ExitCode)
	assert.Equal(t, 6.0, doc.Cost)
	require.NotNil(t, doc.Adjustment)
	assert.Equal(t, "home", doc.Adjustment.From)
	assert.Equal(t, "toll", doc.Adjustment.To)
	assert.Equal(t, 2.0, doc.Adjustment.Discounted)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tollCSV, string(raw))
}

func TestExecute_ApplyRewritesGraph(t *testing.T) {
	path := writeGraph(t, tollCSV)
	_, _, err := execute(t, "-graph", path, "-from", "home", "-to", "work",
		"-coupon-vertices", "toll", "-coupon-multiplier", "0.5", "-heuristic", "zero", "-apply")
	require.NoError(t, err)

	g, err := matrix.LoadCSV(path)
	require.NoError(t, err)
	e, ok := g.Edge("home", "toll")
	require.True(t, ok)
	assert.Equal(t, 2.0, e.Weight)
}

func TestExecute_NoPath(t *testing.T) {
	path := writeGraph(t, tollCSV)
	res, doc, err := execute(t, "-graph", path, "-from", "work", "-to", "home")
	require.NoError(t, err)
	assert.Equal(t, ExitNoPath, res.ExitCode)
	assert.False(t, doc.Found)
	assert.Empty(t, doc.Path)
}

func TestExecute_Positions(t *testing.T) {
	path := writeGraph(t, tollCSV)
	pos := filepath.Join(t.TempDir(), "pos.yaml")
	require.NoError(t, os.WriteFile(pos, []byte(`positions:
  - {id: home, x: 0, y: 0}
  - {id: toll, x: 1, y: 0}
  - {id: work, x: 2, y: 0}
  - {id: ghost, x: 9, y: 9}
`), 0o600))

	res, doc, err := execute(t, "-graph", path, "-positions", pos, "-from", "home", "-to", "work", "-algo", "astar")
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, res.ExitCode)
	assert.Equal(t, "euclidean", doc.Heuristic)
	assert.Equal(t, []string{"home", "toll", "work"}, doc.Path)
}

func TestExecute_LoadFailures(t *testing.T) {
	res, _, err := execute(t, "-graph", filepath.Join(t.TempDir(), "missing.csv"), "-from", "a", "-to", "b")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, res.ExitCode)

	path := writeGraph(t, tollCSV)
	res, _, err = execute(t, "-graph", path, "-positions", filepath.Join(t.TempDir(), "missing.yaml"), "-from", "a", "-to", "b")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, res.ExitCode)
}

func TestExecute_ServeStopsOnCancel(t *testing.T) {
	path := writeGraph(t, tollCSV)
	inv, err := ParseInvocation([]string{"-graph", path, "-serve", "-addr", "127.0.0.1:0"}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Execute(ctx, inv, &bytes.Buffer{}, quiet())
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, res.ExitCode)
}

func TestExecute_ServeWithCache(t *testing.T) {
	mr := miniredis.RunT(t)
	path := writeGraph(t, tollCSV)
	inv, err := ParseInvocation([]string{"-graph", path, "-serve", "-addr", "127.0.0.1:0", "-redis", mr.Addr()}, nil)
	require.NoError(t, err)

	// The cache is dialed with ctx, so let it live long enough to connect.
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	res, err := Execute(ctx, inv, &bytes.Buffer{}, quiet())
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, res.ExitCode)

	addr := mr.Addr()
	mr.Close()
	inv.RedisAddr = addr
	res, err = Execute(context.Background(), inv, &bytes.Buffer{}, quiet())
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, res.ExitCode)
}
