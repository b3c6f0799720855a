package password

import "errors"

var (
	ErrEmptyPassword   = errors.New("password: empty password")
	ErrPasswordTooLong = errors.New("password: longer than 72 bytes")
	ErrHashFailed      = errors.New("password: failed to hash")
	ErrInvalidHash     = errors.New("password: invalid hash")
	ErrInvalidCost     = errors.New("password: invalid cost")
	ErrInvalidID       = errors.New("password: invalid identifier")
)
