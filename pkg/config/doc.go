// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct-tag parsing). Each configuration type is
// parsed once and cached for the lifetime of the process.
//
// # Usage
//
//	type Config struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Strict   bool   `env:"NINO_STRICT" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadEnv reads additional .env files explicitly; MustLoad panics on failure.
// ResetCache clears cached values, which tests use to re-read the environment.
//
// # Error Handling
//
// Load returns ErrParsingConfig joined with the underlying env error, and
// ErrNilPointer for nil targets. LoadEnv returns ErrLoadingEnvFile. Use
// errors.Is to test for them.
package config
