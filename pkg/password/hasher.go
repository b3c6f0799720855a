package password

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/flxhelpers/flxhelpers/pkg/async"
	"github.com/flxhelpers/flxhelpers/pkg/logger"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// MaxLength is the longest input bcrypt accepts, in bytes.
const MaxLength = 72

// Hasher produces and verifies bcrypt hashes.
type Hasher struct {
	cost   int
	logger *slog.Logger
}

type Option func(*Hasher)

// WithCost sets the bcrypt work factor. It panics when cost is outside
// [bcrypt.MinCost, bcrypt.MaxCost].
func WithCost(cost int) Option {
	if err := validateCost(cost); err != nil {
		panic(err)
	}
	return func(h *Hasher) {
		h.cost = cost
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Hasher) {
		if l != nil {
			h.logger = l
		}
	}
}

func NewHasher(opts ...Option) *Hasher {
	h := &Hasher{
		cost:   DefaultCost,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("password"))
	return h
}

// NewFromConfig creates a Hasher from cfg. A zero cost keeps DefaultCost;
// an out-of-range cost panics like WithCost.
func NewFromConfig(cfg Config, opts ...Option) *Hasher {
	var configOpts []Option
	if cfg.Cost != 0 {
		configOpts = append(configOpts, WithCost(cfg.Cost))
	}
	return NewHasher(append(configOpts, opts...)...)
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns the bcrypt hash of plain using the configured cost.
func (h *Hasher) Hash(ctx context.Context, plain string) (string, error) {
	return h.HashWithCost(ctx, plain, h.cost)
}

// HashWithCost hashes plain with an explicit cost. If ctx ends before the
// hash is ready the context error is returned.
func (h *Hasher) HashWithCost(ctx context.Context, plain string, cost int) (string, error) {
	if err := validateCost(cost); err != nil {
		return "", err
	}
	return h.hashAsync(ctx, plain, cost).AwaitContext(ctx)
}

// HashAsync starts hashing in the background with the configured cost.
func (h *Hasher) HashAsync(ctx context.Context, plain string) *async.Future[string] {
	return h.hashAsync(ctx, plain, h.cost)
}

// Verify reports whether plain matches hash. A mismatch is (false, nil);
// a hash that is not a bcrypt hash yields ErrInvalidHash.
func (h *Hasher) Verify(ctx context.Context, plain, hash string) (bool, error) {
	return h.VerifyAsync(ctx, plain, hash).AwaitContext(ctx)
}

// VerifyAsync starts verification in the background.
func (h *Hasher) VerifyAsync(ctx context.Context, plain, hash string) *async.Future[bool] {
	return async.Async(ctx, plain, func(ctx context.Context, plain string) (bool, error) {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return false, errors.Join(ErrInvalidHash, err)
		}

		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, errors.Join(ErrInvalidHash, err)
		}
	})
}

func (h *Hasher) hashAsync(ctx context.Context, plain string, cost int) *async.Future[string] {
	return async.Async(ctx, plain, func(ctx context.Context, plain string) (string, error) {
		if err := validatePlain(plain); err != nil {
			return "", err
		}

		start := time.Now()
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
		if err != nil {
			h.logger.ErrorContext(ctx, "bcrypt hashing failed", logger.Error(err))
			return "", errors.Join(ErrHashFailed, err)
		}
		h.logger.DebugContext(ctx, "password hashed",
			slog.Int("cost", cost),
			logger.Duration(time.Since(start)),
		)
		return string(hash), nil
	})
}

func validatePlain(plain string) error {
	if plain == "" {
		return ErrEmptyPassword
	}
	if len(plain) > MaxLength {
		return ErrPasswordTooLong
	}
	return nil
}

func validateCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
