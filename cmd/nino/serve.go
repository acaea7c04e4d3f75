package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/nino/modules/ninoapi"
	"github.com/dmitrymomot/nino/pkg/clientip"
	"github.com/dmitrymomot/nino/pkg/environment"
	"github.com/dmitrymomot/nino/pkg/httpserver"
	"github.com/dmitrymomot/nino/pkg/logger"
	"github.com/dmitrymomot/nino/pkg/metrics"
	"github.com/dmitrymomot/nino/pkg/ratelimiter"
	"github.com/dmitrymomot/nino/pkg/redis"
	"github.com/dmitrymomot/nino/pkg/requestid"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var checks []func(context.Context) error
			var limiter *ratelimiter.Bucket
			if a.cfg.RateLimit.Enabled() {
				var store ratelimiter.Store
				if a.cfg.Redis.Enabled() {
					client, err := redis.Connect(cmd.Context(), a.cfg.Redis)
					if err != nil {
						return err
					}
					defer client.Close()

					checks = append(checks, redis.Healthcheck(client))
					store = ratelimiter.NewRedisStore(client)
				} else {
					ms := ratelimiter.NewMemoryStore()
					defer ms.Close()
					store = ms
				}

				var err error
				if limiter, err = ratelimiter.NewBucket(store, a.cfg.RateLimit); err != nil {
					return err
				}
			}

			reg := prometheus.NewRegistry()
			if err := metrics.RegisterRuntime(reg); err != nil {
				return err
			}

			srv := httpserver.NewFromConfig(a.cfg.HTTP,
				httpserver.WithLogger(a.log.With(logger.Component("httpserver"))),
			)
			return srv.Run(cmd.Context(), newHandler(handlerConfig{
				log:     a.log,
				env:     a.env,
				strict:  a.strict,
				trusted: a.cfg.TrustedIPHeaders,
				limiter: limiter,
				metrics: reg,
				checks:  checks,
			}))
		},
	}
}

type handlerConfig struct {
	log     *slog.Logger
	env     environment.Environment
	strict  bool
	trusted []string
	limiter *ratelimiter.Bucket
	// metrics, when set, receives the request and validation collectors
	// and is served at /metrics.
	metrics *prometheus.Registry
	// checks gate /healthz readiness.
	checks []func(context.Context) error
}

func newHandler(cfg handlerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(cfg.env),
		clientip.Middleware(cfg.trusted...),
	)

	opts := ninoapi.RouterOptions{
		Logger:  cfg.log,
		Strict:  cfg.strict,
		Limiter: cfg.limiter,
	}
	if cfg.metrics != nil {
		m := metrics.New(cfg.metrics)
		opts.Checks = m
		r.Use(m.Middleware)
		r.Handle("/metrics", metrics.Handler(cfg.metrics))
	}

	r.Get("/healthz", httpserver.HealthCheckHandler(cfg.log, cfg.checks...))
	r.Mount("/v1/nino", ninoapi.Router(opts))
	return r
}
