package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultOpTimeout = 2 * time.Second

// Store is the key/value contract the game cache runs on. Keys are
// namespaced by the implementation so multiple deployments can share one
// backing store. There is no compare-and-swap; last writer wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type RedisStore struct {
	c         *redis.Client
	prefix    string
	opTimeout time.Duration
}

type RedisStoreOpt func(*RedisStore)

// WithOpTimeout bounds each store call. The backing client has its own
// defaults, but an unbounded call would stall a request or a scheduler
// tick for its full duration.
func WithOpTimeout(d time.Duration) RedisStoreOpt {
	return func(s *RedisStore) {
		s.opTimeout = d
	}
}

func NewRedisStore(c *redis.Client, prefix string, opts ...RedisStoreOpt) *RedisStore {
	s := &RedisStore{
		c:         c,
		prefix:    prefix,
		opTimeout: DefaultOpTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// key namespaces k under the deployment prefix, e.g. "main_arthur".
func (s *RedisStore) key(k string) string {
	return fmt.Sprintf("%s_%s", s.prefix, k)
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	val, err := s.c.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: getting %q: %v", ErrCacheUnavailable, key, err)
	}

	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	err := s.c.Set(ctx, s.key(key), value, 0).Err()
	if err != nil {
		return fmt.Errorf("%w: setting %q: %v", ErrCacheUnavailable, key, err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	err := s.c.Del(ctx, s.key(key)).Err()
	if err != nil {
		return fmt.Errorf("%w: deleting %q: %v", ErrCacheUnavailable, key, err)
	}

	return nil
}
