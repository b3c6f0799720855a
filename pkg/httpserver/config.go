package httpserver

import "time"

// Config holds the listener settings read from the environment. The write
// timeout leaves room for MX lookups and bcrypt hashing in a single request.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	HealthPath string `env:"HTTP_HEALTH_PATH" envDefault:"/healthz"`
	ReadyPath  string `env:"HTTP_READY_PATH" envDefault:"/readyz"`
}

// NewFromConfig creates a Server from cfg. Zero fields keep the package
// defaults; explicit options are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := []Option{
		WithAddr(cfg.Addr),
		WithTimeouts(Timeouts{
			ReadHeader: cfg.ReadHeaderTimeout,
			Read:       cfg.ReadTimeout,
			Write:      cfg.WriteTimeout,
			Idle:       cfg.IdleTimeout,
		}),
		WithShutdownTimeout(cfg.ShutdownTimeout),
		WithHealthPaths(cfg.HealthPath, cfg.ReadyPath),
	}
	return New(append(configOpts, opts...)...)
}
