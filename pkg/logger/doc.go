// Package logger builds *slog.Logger instances with functional options and
// supplies attribute helpers so that every helper package logs with the same
// keys.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in a handler that copies attributes from the record's context:
// those stored with ContextWithAttrs, then the results of registered
// ContextExtractor callbacks. Attributes passed at the call site win over
// context ones with the same key. NewFromConfig maps a Config loaded from the
// environment (APP_ENV, APP_NAME, LOG_LEVEL, LOG_FORMAT) onto those options.
//
// # Usage
//
//	import "github.com/flxhelpers/flxhelpers/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "flxhelpers"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	logger.SetAsDefault(log)
//
//	ctx = logger.ContextWithAttrs(ctx, logger.Method(r.Method), logger.URL(r.URL.Path))
//	log.InfoContext(ctx, "mx lookup finished",
//	    logger.Component("email"),
//	    logger.Domain("example.com"),
//	    logger.Duration(time.Since(start)),
//	)
//
// Packages that accept an optional logger default to Discard so that library
// use stays silent unless a logger is injected.
package logger
