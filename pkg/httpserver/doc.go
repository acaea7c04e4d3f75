// Package httpserver wraps net/http with graceful shutdown, timeouts,
// health checks and slog logging.
//
// Run listens, then blocks until the context is cancelled, SIGINT/SIGTERM
// arrives or Shutdown is called, and drains in-flight requests within the
// shutdown timeout:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler answers liveness ("ALIVE") and readiness ("READY" /
// "NOT_READY") checks.
//
// # Error Handling
//
// Listen and serve failures are joined with ErrStart, shutdown failures with
// ErrShutdown; a second Run call returns ErrStart joined with ErrAlreadyRunning.
// Option constructors panic on invalid values.
package httpserver
