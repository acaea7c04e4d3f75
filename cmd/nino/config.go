package main

import (
	"github.com/dmitrymomot/nino/pkg/httpserver"
	"github.com/dmitrymomot/nino/pkg/ratelimiter"
	"github.com/dmitrymomot/nino/pkg/redis"
)

// Config is the process configuration, loaded with pkg/config.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"nino"`
	// LogLevel overrides the level picked for Env when set.
	LogLevel string `env:"LOG_LEVEL"`
	Strict   bool   `env:"NINO_STRICT" envDefault:"false"`

	// TrustedIPHeaders lists proxy headers that carry the client address.
	TrustedIPHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
	// Redis, when REDIS_URL is set, holds rate limit state shared by replicas.
	Redis redis.Config
}
