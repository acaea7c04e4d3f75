package ninoapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/nino/handler"
	"github.com/dmitrymomot/nino/pkg/binder"
	"github.com/dmitrymomot/nino/pkg/clientip"
	"github.com/dmitrymomot/nino/pkg/logger"
	"github.com/dmitrymomot/nino/pkg/ratelimiter"
)

// RouterOptions configures Router.
type RouterOptions struct {
	// Logger receives one record per request. Defaults to a discarding logger.
	Logger *slog.Logger
	// Strict selects the strict ruleset when a request does not say otherwise.
	Strict bool
	// Limiter, when set, limits requests per LimitKey.
	Limiter *ratelimiter.Bucket
	// LimitKey defaults to the client IP stored by clientip.Middleware.
	LimitKey ratelimiter.KeyFunc
	// Checks, when set, is told about every validation outcome.
	Checks CheckRecorder
}

// CheckRecorder counts validation outcomes. *metrics.Metrics implements it.
type CheckRecorder interface {
	ObserveCheck(mode string, valid bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCheck(string, bool) {}

// Router returns the NINO endpoints.
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("ninoapi"))

	checks := opts.Checks
	if checks == nil {
		checks = nopRecorder{}
	}

	h := &handlers{log: log, strict: opts.Strict, checks: checks}
	onErr := handler.NewErrorHandler(log)

	r := chi.NewRouter()
	r.Use(middleware.RequestSize(binder.MaxJSONSize + 1))
	if opts.Limiter != nil {
		key := opts.LimitKey
		if key == nil {
			key = func(r *http.Request) string { return clientip.FromContext(r.Context()) }
		}
		r.Use(ratelimiter.Middleware(opts.Limiter, key,
			ratelimiter.WithLimitedHandler(http.HandlerFunc(h.limited)),
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				onErr(handler.NewContext(w, r), errors.Join(handler.ErrServiceUnavailable, err))
			}),
		))
	}

	r.Post("/check", wrap[Request](h.check, onErr, binder.JSON()))
	r.Post("/parse", wrap[Request](h.parse, onErr, binder.JSON()))
	r.Get("/weekday/{nino}", wrap[WeekdayRequest](h.weekday, onErr, binder.Path(chi.URLParam), binder.Query()))
	return r
}

func wrap[R any](fn handler.HandlerFunc[handler.Context, R], onErr handler.ErrorHandler[handler.Context], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(fn,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](onErr),
	)
}
