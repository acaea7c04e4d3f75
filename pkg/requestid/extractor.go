package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/nino/pkg/logger"
)

// LoggerExtractor adds the request ID to every record logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
