// Package logger builds context-aware slog loggers and provides attribute
// helpers with consistent key names.
//
// New creates a *slog.Logger from Option values: output format (text or json),
// minimum level, static attributes and ContextExtractor callbacks that pull
// request-scoped values (request id, client IP) out of context.Context each
// time a record is handled.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "nino"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "nino checked",
//	    logger.NINO(input),
//	    logger.Mode(strict),
//	    logger.Valid(ok),
//	)
//
// # Personal data
//
// National Insurance numbers are personal data. Always log them through
// NINO, which records only the masked form ("AA****73A").
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check. WithFormat panics on unknown formats; ParseLevel
// returns an error for unknown level names.
package logger
