package cache

import "errors"

var (
	// ErrCacheUnavailable wraps any backing-store failure, including
	// per-call timeouts. Callers surface a "try again" message and must
	// not mutate local assumptions.
	ErrCacheUnavailable = errors.New("cache unavailable")

	// ErrInvalidState is a contract violation on Put (missing id). It is
	// never coerced; the caller gets it back loudly.
	ErrInvalidState = errors.New("invalid game state")
)
