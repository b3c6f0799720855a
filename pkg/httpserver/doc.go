// Package httpserver runs the flxhelpers HTTP service.
//
// Run wraps the application handler with the shared middleware stack
// (RealIP, request id, access log, panic recovery), serves liveness and
// readiness endpoints next to it, and blocks until the context is canceled.
// Cancellation drains open connections and then runs the shutdown hooks in
// reverse registration order.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//	    httpserver.WithLogger(log),
//	    httpserver.WithReadinessCheck("upstream", pingUpstream),
//	    httpserver.OnShutdown("fetcher", closeIdle),
//	)
//	if err := srv.Run(ctx, svc.Handle()); err != nil {
//	    log.Error("server exited", logger.Error(err))
//	}
//
// The liveness endpoint (/healthz by default) always answers 200. The
// readiness endpoint (/readyz) runs every registered Check and answers 503
// when any of them fails.
package httpserver
