package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flxhelpers/flxhelpers/pkg/logger"
	"github.com/flxhelpers/flxhelpers/pkg/requestid"
)

// Handler mounts app at "/" behind the service middleware: client IP from
// proxy headers, X-Request-ID propagation, access logging and panic
// recovery. The liveness and readiness endpoints are served next to it.
// A nil app answers 404 for everything but the health endpoints.
func (s *Server) Handler(app http.Handler) http.Handler {
	if app == nil {
		app = http.NotFoundHandler()
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP, requestid.Middleware, s.accessLog, middleware.Recoverer)

	r.Get(s.cfg.healthPath, HealthHandler(s.cfg.logger, nil))
	r.Get(s.cfg.readyPath, HealthHandler(s.cfg.logger, s.cfg.readiness))
	r.Mount("/", app)

	return r
}

// accessLog stores the method and path on the request context, so every
// record logged while serving it carries them, and logs one line per
// request. Health endpoint hits are logged at debug level.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logger.ContextWithAttrs(r.Context(), logger.Method(r.Method), logger.URL(r.URL.Path))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if r.URL.Path == s.cfg.healthPath || r.URL.Path == s.cfg.readyPath {
			level = slog.LevelDebug
		}
		s.cfg.logger.Log(ctx, level, "request completed",
			logger.Status(status),
			logger.Duration(time.Since(start)),
			slog.String("remote_addr", r.RemoteAddr),
		)
	})
}
