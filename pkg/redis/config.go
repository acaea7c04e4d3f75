package redis

import "time"

// Config describes a Redis connection.
type Config struct {
	// URL in the form "redis://:password@localhost:6379/0".
	URL            string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a connection URL is set.
func (c Config) Enabled() bool {
	return c.URL != ""
}
