// Package requestid tags each HTTP request with an id and exposes it to
// handlers and loggers.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
