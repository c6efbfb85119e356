// SPDX-License-Identifier: MIT
// Package config loads tollpath runtime settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvAddr      = "TOLLPATH_ADDR"
	EnvGraphCSV  = "TOLLPATH_GRAPH_CSV"
	EnvPositions = "TOLLPATH_POSITIONS"
	EnvLogLevel  = "TOLLPATH_LOG_LEVEL"
	EnvMaxCost   = "TOLLPATH_MAX_COST"
	EnvVersion   = "TOLLPATH_VERSION"

	EnvCORSOrigins = "TOLLPATH_CORS_ORIGINS"
	EnvRateLimit   = "TOLLPATH_RATE_LIMIT"
	EnvRateBurst   = "TOLLPATH_RATE_BURST"
	EnvRedisAddr   = "TOLLPATH_REDIS_ADDR"
	EnvCacheTTL    = "TOLLPATH_CACHE_TTL"
)

type Config struct {
	Server ServerConfig
	Graph  GraphConfig
	Cache  CacheConfig
	App    AppConfig
}

type ServerConfig struct {
	Addr string
	// CORSOrigins lists allowed browser origins; empty disables CORS.
	CORSOrigins []string
	// RateLimit is route requests per second; 0 disables limiting.
	RateLimit float64
	RateBurst int
}

// CacheConfig configures the Redis route cache. An empty RedisAddr
// disables caching.
type CacheConfig struct {
	RedisAddr string
	TTL       time.Duration
}

type GraphConfig struct {
	CSVPath       string
	PositionsPath string
	// MaxCost caps every search run by the service; +Inf disables the cap.
	MaxCost float64
}

type AppConfig struct {
	LogLevel string
	Version  string
}

// Load reads .env files (missing files are not an error) and then the
// process environment. files defaults to ".env".
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("no .env file found, using environment variables", slog.Any("err", err))
	}

	maxCost, err := getEnvAsFloat(EnvMaxCost, math.Inf(1))
	if err != nil {
		return nil, err
	}
	rateLimit, err := getEnvAsFloat(EnvRateLimit, 0)
	if err != nil {
		return nil, err
	}
	burst, err := getEnvAsInt(EnvRateBurst, 10)
	if err != nil {
		return nil, err
	}
	ttl, err := getEnvAsDuration(EnvCacheTTL, 10*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Server: ServerConfig{
			Addr:        getEnv(EnvAddr, ":8080"),
			CORSOrigins: splitList(getEnv(EnvCORSOrigins, "")),
			RateLimit:   rateLimit,
			RateBurst:   burst,
		},
		Graph: GraphConfig{
			CSVPath:       getEnv(EnvGraphCSV, ""),
			PositionsPath: getEnv(EnvPositions, ""),
			MaxCost:       maxCost,
		},
		Cache: CacheConfig{
			RedisAddr: getEnv(EnvRedisAddr, ""),
			TTL:       ttl,
		},
		App: AppConfig{
			LogLevel: strings.ToLower(getEnv(EnvLogLevel, "info")),
			Version:  getEnv(EnvVersion, "dev"),
		},
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%s is required", EnvAddr)
	}
	if c.Graph.MaxCost < 0 || math.IsNaN(c.Graph.MaxCost) {
		return fmt.Errorf("%s must be non-negative, got %v", EnvMaxCost, c.Graph.MaxCost)
	}
	if _, err := ParseLevel(c.App.LogLevel); err != nil {
		return err
	}
	if c.Server.RateLimit < 0 || math.IsNaN(c.Server.RateLimit) {
		return fmt.Errorf("%s must be non-negative, got %v", EnvRateLimit, c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		return fmt.Errorf("%s must be at least 1 when %s is set", EnvRateBurst, EnvRateLimit)
	}
	for _, o := range c.Server.CORSOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("%s: origin %q needs an http(s) scheme", EnvCORSOrigins, o)
		}
	}
	if c.Cache.RedisAddr != "" && c.Cache.TTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvCacheTTL)
	}

	return nil
}

// Level returns the slog level for App.LogLevel.
func (c *Config) Level() slog.Level {
	lvl, _ := ParseLevel(c.App.LogLevel)

	return lvl
}

// ParseLevel maps debug|info|warn|error to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}

	return lvl, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, valueStr)
	}

	return value, nil
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, valueStr)
	}

	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, valueStr)
	}

	return value, nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
