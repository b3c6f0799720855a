package logger

import (
	"log/slog"
	"strings"
)

type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"flxhelpers"`
	Level   string `env:"LOG_LEVEL"`  // debug, info, warn or error; overrides the environment preset
	Format  string `env:"LOG_FORMAT"` // json or text; overrides the environment preset
}

// NewFromConfig builds a logger from cfg. Explicit options are applied last.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Level)); err == nil {
			configOpts = append(configOpts, WithLevel(level))
		}
	}
	if cfg.Format != "" {
		configOpts = append(configOpts, WithFormat(Format(strings.ToLower(cfg.Format))))
	}

	return New(append(configOpts, opts...)...)
}
