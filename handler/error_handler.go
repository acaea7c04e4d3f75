package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/nino/pkg/environment"
	"github.com/dmitrymomot/nino/pkg/logger"
)

// NewErrorHandler returns an ErrorHandler that logs err and renders it with
// JSONError. Client errors are logged at warn level, server errors at error level.
// Records carry the matched route pattern, never the raw path, since path
// parameters may hold personal identifiers.
// In development, server error responses carry the error text in meta.debug.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		status, _ := errorToDetail(err)
		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		r := ctx.Request()
		log.LogAttrs(ctx, level, "request error",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("route", routeOf(r)),
		)

		var opts []JSONOption
		if level == slog.LevelError && environment.IsDevelopment(ctx) {
			opts = append(opts, WithJSONMeta(map[string]any{"debug": err.Error()}))
		}

		if renderErr := JSONError(err, opts...).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(ctx, slog.LevelError, "failed to render error response", logger.Error(renderErr))
		}
	}
}

func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
