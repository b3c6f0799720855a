package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type Option func(*config)

// Timeouts bound the phases of a connection. Zero fields leave the
// corresponding http.Server field untouched.
type Timeouts struct {
	ReadHeader time.Duration
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
}

// Hook runs during startup or shutdown. Start hooks receive the context
// passed to Run; shutdown hooks receive a context bounded by the shutdown
// timeout.
type Hook func(ctx context.Context) error

type namedHook struct {
	name string
	fn   Hook
}

// WithAddr sets the listen address. An empty address is ignored.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithTimeouts panics on negative values.
func WithTimeouts(t Timeouts) Option {
	if t.ReadHeader < 0 || t.Read < 0 || t.Write < 0 || t.Idle < 0 {
		panic("httpserver: negative timeout")
	}
	return func(c *config) {
		c.timeouts = mergeTimeouts(c.timeouts, t)
	}
}

// WithShutdownTimeout bounds connection draining plus shutdown hooks.
// Non-positive values are ignored.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// WithServer uses srv as the base server. Fields already set on srv win over
// the configured address and timeouts.
func WithServer(srv *http.Server) Option {
	return func(c *config) {
		if srv != nil {
			c.server = srv
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHealthPaths moves the liveness and readiness endpoints. Empty paths
// keep the defaults.
func WithHealthPaths(health, ready string) Option {
	return func(c *config) {
		if health != "" {
			c.healthPath = health
		}
		if ready != "" {
			c.readyPath = ready
		}
	}
}

// WithReadinessCheck adds a named check to the readiness endpoint. It panics
// on a nil check.
func WithReadinessCheck(name string, check Check) Option {
	if check == nil {
		panic("httpserver: nil readiness check " + name)
	}
	return func(c *config) {
		if c.readiness == nil {
			c.readiness = make(map[string]Check)
		}
		c.readiness[name] = check
	}
}

// OnStart registers a hook that runs before the listener opens. An error
// aborts Run with ErrStart. It panics on a nil hook.
func OnStart(name string, fn Hook) Option {
	if fn == nil {
		panic("httpserver: nil start hook " + name)
	}
	return func(c *config) {
		c.startHooks = append(c.startHooks, namedHook{name: name, fn: fn})
	}
}

// OnShutdown registers a hook that runs after connections are drained.
// Hooks run in reverse registration order and all of them run even when one
// fails. It panics on a nil hook.
func OnShutdown(name string, fn Hook) Option {
	if fn == nil {
		panic("httpserver: nil shutdown hook " + name)
	}
	return func(c *config) {
		c.stopHooks = append(c.stopHooks, namedHook{name: name, fn: fn})
	}
}

func mergeTimeouts(base, override Timeouts) Timeouts {
	if override.ReadHeader > 0 {
		base.ReadHeader = override.ReadHeader
	}
	if override.Read > 0 {
		base.Read = override.Read
	}
	if override.Write > 0 {
		base.Write = override.Write
	}
	if override.Idle > 0 {
		base.Idle = override.Idle
	}
	return base
}
