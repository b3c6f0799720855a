package email

import (
	"context"
	"log/slog"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/flxhelpers/flxhelpers/pkg/logger"
)

// DefaultLookupTimeout bounds a single MX lookup.
const DefaultLookupTimeout = 5 * time.Second

var syntaxRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MXResolver looks up mail exchangers for a domain. *net.Resolver satisfies it.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// Result is the outcome of Checker.Validate. Reason is empty when Valid.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Checker validates addresses by syntax, disposable-domain denylist and
// the presence of MX records.
type Checker struct {
	resolver   MXResolver
	disposable map[string]struct{}
	extra      []string
	timeout    time.Duration
	logger     *slog.Logger
}

type Option func(*Checker)

func WithResolver(r MXResolver) Option {
	return func(c *Checker) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithDisposableDomains extends the built-in denylist.
func WithDisposableDomains(domains ...string) Option {
	return func(c *Checker) {
		c.extra = append(c.extra, domains...)
	}
}

// WithLookupTimeout bounds each MX lookup; non-positive values disable the bound.
func WithLookupTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.timeout = d
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		resolver: net.DefaultResolver,
		timeout:  DefaultLookupTimeout,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.disposable = newDomainSet(c.extra...)
	c.logger = c.logger.With(logger.Component("email"))
	return c
}

// NewFromConfig creates a Checker from cfg. Explicit options win over cfg.
func NewFromConfig(cfg Config, opts ...Option) *Checker {
	configOpts := []Option{WithDisposableDomains(cfg.DisposableDomains...)}
	if cfg.LookupTimeout > 0 {
		configOpts = append(configOpts, WithLookupTimeout(cfg.LookupTimeout))
	}
	return NewChecker(append(configOpts, opts...)...)
}

// Validate runs the checks in order and stops at the first failure.
// Lookup failures are reported in the Result, never as an error.
func (c *Checker) Validate(ctx context.Context, address string) Result {
	if !syntaxRegex.MatchString(address) {
		return reject(ReasonInvalidFormat)
	}

	_, domain, _ := strings.Cut(address, "@")
	domain = strings.ToLower(domain)
	if domain == "" {
		return reject(ReasonMissingDomain)
	}

	if c.IsDisposable(domain) {
		return reject(ReasonDisposableDomain)
	}

	return c.lookup(ctx, domain)
}

// Check is Validate expressed as an error: nil for an accepted address,
// *DomainRejection otherwise.
func (c *Checker) Check(ctx context.Context, address string) error {
	res := c.Validate(ctx, address)
	if res.Valid {
		return nil
	}
	return &DomainRejection{Address: address, Reason: res.Reason}
}

// IsDisposable reports whether domain is denied by this checker, including
// domains added with WithDisposableDomains.
func (c *Checker) IsDisposable(domain string) bool {
	_, ok := c.disposable[normalizeDomain(domain)]
	return ok
}

// Predicate adapts the checker to a context-aware field check. Non-string
// values are rejected; the returned error is always nil.
func (c *Checker) Predicate() func(ctx context.Context, value any) (bool, error) {
	return func(ctx context.Context, value any) (bool, error) {
		s, ok := value.(string)
		if !ok {
			return false, nil
		}
		return c.Validate(ctx, s).Valid, nil
	}
}

func (c *Checker) lookup(ctx context.Context, domain string) Result {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	records, err := c.resolver.LookupMX(ctx, domain)
	if err != nil {
		c.logger.DebugContext(ctx, "mx lookup failed",
			logger.Domain(domain),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return reject(ReasonDomainUnreachable)
	}
	if len(records) == 0 {
		c.logger.DebugContext(ctx, "mx lookup returned no records",
			logger.Domain(domain),
			logger.Duration(time.Since(start)),
		)
		return reject(ReasonNoMXRecords)
	}
	return Result{Valid: true}
}

func reject(reason string) Result {
	return Result{Reason: reason}
}
