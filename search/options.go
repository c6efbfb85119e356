// SPDX-License-Identifier: MIT
package search

import (
	"log/slog"
	"math"
)

// Options configures a search run.
//
// MarkVisited       – publish the extraction set onto the graph's Visited flags.
// ApplyAdjustment   – write a realized coupon discount back into the graph.
// MaxCost           – vertices whose accumulated cost would exceed this are not relaxed.
// Logger            – receives debug records; discarded by default.
type Options struct {
	MarkVisited     bool
	ApplyAdjustment bool
	MaxCost         float64
	Logger          *slog.Logger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{
		MaxCost: math.Inf(1),
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithMarkVisited sets Visited on every extracted vertex of the graph.
// Callers reset the flags with core.Graph.ResetVisited between runs.
func WithMarkVisited() Option {
	return func(o *Options) { o.MarkVisited = true }
}

// WithApplyAdjustment makes AStarCoupon apply the realized Adjustment to the
// graph before returning. It has no effect on Dijkstra and AStar.
func WithApplyAdjustment() Option {
	return func(o *Options) { o.ApplyAdjustment = true }
}

// WithMaxCost caps the accumulated cost explored. A goal beyond the cap is
// reported as unreachable.
func WithMaxCost(c float64) Option {
	return func(o *Options) { o.MaxCost = c }
}

// WithLogger routes debug logging to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxCost < 0 || math.IsNaN(cfg.MaxCost) {
		return cfg, ErrBadMaxCost
	}

	return cfg, nil
}
