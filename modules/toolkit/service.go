package toolkit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flxhelpers/flxhelpers/pkg/email"
	"github.com/flxhelpers/flxhelpers/pkg/logger"
	"github.com/flxhelpers/flxhelpers/pkg/password"
)

// Service exposes the helper packages as JSON endpoints.
type Service struct {
	checker *email.Checker
	hasher  *password.Hasher
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService wires the checker and hasher into HTTP handlers. Nil arguments
// fall back to the package defaults.
func NewService(checker *email.Checker, hasher *password.Hasher, opts ...Option) *Service {
	s := &Service{
		checker: checker,
		hasher:  hasher,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.checker == nil {
		s.checker = email.NewChecker(email.WithLogger(s.logger))
	}
	if s.hasher == nil {
		s.hasher = password.NewHasher(password.WithLogger(s.logger))
	}
	s.logger = s.logger.With(logger.Component("toolkit"))
	return s
}

// Handle returns the router:
//
//	POST /validate
//	POST /email/check
//	POST /slug
//	POST /password/hash
//	POST /password/verify
//	GET  /id
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/validate", s.validate)
	r.Post("/email/check", s.checkEmail)
	r.Post("/slug", s.makeSlug)
	r.Route("/password", func(r chi.Router) {
		r.Post("/hash", s.hashPassword)
		r.Post("/verify", s.verifyPassword)
	})
	r.Get("/id", s.newID)

	return r
}
