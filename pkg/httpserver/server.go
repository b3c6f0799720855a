package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/flxhelpers/flxhelpers/pkg/logger"
)

type config struct {
	addr            string
	timeouts        Timeouts
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	healthPath      string
	readyPath       string
	readiness       map[string]Check
	startHooks      []namedHook
	stopHooks       []namedHook
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		timeouts:        Timeouts{ReadHeader: 5 * time.Second},
		shutdownTimeout: 10 * time.Second,
		logger:          logger.Discard(),
		healthPath:      "/healthz",
		readyPath:       "/readyz",
	}
}

// Server runs the service behind the shared middleware stack and health
// endpoints, and drains it on shutdown.
type Server struct {
	cfg   *config
	ready chan struct{}

	mu  sync.Mutex
	srv *http.Server
	ln  net.Listener

	once        sync.Once
	shutdownErr error
}

func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.logger = cfg.logger.With(logger.Component("httpserver"))
	return &Server{cfg: cfg, ready: make(chan struct{})}
}

// Ready is closed once the listener is open.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound listener address once Ready is closed, and the
// configured address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	if s.cfg.server != nil && s.cfg.server.Addr != "" {
		return s.cfg.server.Addr
	}
	return s.cfg.addr
}

// Run serves app, wrapped by Handler, until ctx is canceled or the listener
// fails. Cancellation triggers Shutdown; its error, if any, is returned.
func (s *Server) Run(ctx context.Context, app http.Handler) error {
	log := s.cfg.logger

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	srv := s.httpServer(s.Handler(app))
	s.srv = srv
	s.mu.Unlock()

	for _, h := range s.cfg.startHooks {
		if err := h.fn(ctx); err != nil {
			log.ErrorContext(ctx, "start hook failed", slog.String("hook", h.name), logger.Error(err))
			return errors.Join(ErrStart, fmt.Errorf("hook %s: %w", h.name, err))
		}
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	close(s.ready)

	log.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		log.InfoContext(ctx, "shutdown requested", logger.Reason(context.Cause(ctx).Error()))
		err := s.Shutdown(context.WithoutCancel(ctx))
		<-errCh
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.ErrorContext(ctx, "http server failed", logger.Error(err))
		return errors.Join(ErrServe, err)
	}
}

// Shutdown drains open connections, then runs the shutdown hooks, all
// within the shutdown timeout. Only the first call does the work; later
// calls return its result. Calling it before Run is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.once.Do(func() {
		s.shutdownErr = s.shutdown(ctx, srv)
	})
	return s.shutdownErr
}

func (s *Server) shutdown(ctx context.Context, srv *http.Server) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
	defer cancel()

	start := time.Now()
	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	for _, h := range slices.Backward(s.cfg.stopHooks) {
		if err := h.fn(ctx); err != nil {
			s.cfg.logger.ErrorContext(ctx, "shutdown hook failed", slog.String("hook", h.name), logger.Error(err))
			errs = append(errs, fmt.Errorf("hook %s: %w", h.name, err))
		}
	}

	s.cfg.logger.InfoContext(ctx, "http server stopped",
		logger.Duration(time.Since(start)),
		logger.Errors(errs...),
	)
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrShutdown}, errs...)...)
	}
	return nil
}

func (s *Server) httpServer(h http.Handler) *http.Server {
	srv := s.cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = s.cfg.addr
	}

	t := s.cfg.timeouts
	if srv.ReadHeaderTimeout == 0 {
		srv.ReadHeaderTimeout = t.ReadHeader
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = t.Read
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = t.Write
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = t.Idle
	}
	if srv.ErrorLog == nil {
		srv.ErrorLog = slog.NewLogLogger(s.cfg.logger.Handler(), slog.LevelWarn)
	}
	srv.Handler = h
	return srv
}
