// Package password hashes credentials with bcrypt and generates random
// identifiers.
//
// A Hasher uses cost 10 unless configured otherwise. Hashing and verification
// run on an async.Future so that callers can either wait with Hash and Verify,
// which honour context cancellation, or collect the futures from HashAsync
// and VerifyAsync.
//
//	h := password.NewHasher(password.WithCost(12))
//	hash, err := h.Hash(ctx, "s3cret")
//	ok, err := h.Verify(ctx, "s3cret", hash)
//
// bcrypt only looks at the first 72 bytes of its input, so longer passwords
// are refused with ErrPasswordTooLong instead of being silently truncated.
//
// NewID returns a version 4 UUID string.
package password
