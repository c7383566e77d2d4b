// Package config loads server configuration from environment variables.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all server settings. JWT_SECRET and MONGO_URI carry no
// defaults on purpose: booting with a guessable secret or an implicit
// database is worse than refusing to boot.
type Config struct {
	Port     string `env:"PORT,      default=8000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string `env:"JWT_SECRET, required"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI, required"`
	Database string        `env:"MONGO_DB,  default=notes"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig bounds credential attempts per client IP on /api/signin.
type RateLimitConfig struct {
	Attempts int           `env:"RATE_LIMIT_ATTEMPTS, default=10"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the server runs in a local environment,
// which switches logging to pretty console output.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
