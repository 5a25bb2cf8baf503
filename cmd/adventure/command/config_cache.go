package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-adventure/internal/cache"
	"github.com/pixil98/go-errors"
	"github.com/redis/go-redis/v9"
)

type CacheConfig struct {
	Addr       string `json:"addr"`
	Prefix     string `json:"prefix"`
	MaxGameAge string `json:"max_game_age"`
	OpTimeout  string `json:"op_timeout"`
}

func (c *CacheConfig) validate() error {
	el := errors.NewErrorList()

	if c.Addr == "" {
		el.Add(fmt.Errorf("addr is required"))
	}

	if c.MaxGameAge != "" {
		d, err := time.ParseDuration(c.MaxGameAge)
		if err != nil {
			el.Add(fmt.Errorf("parsing max_game_age: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("max_game_age must be positive"))
		}
	}

	if c.OpTimeout != "" {
		_, err := time.ParseDuration(c.OpTimeout)
		if err != nil {
			el.Add(fmt.Errorf("parsing op_timeout: %w", err))
		}
	}

	return el.Err()
}

func (c *CacheConfig) buildGameCache() (*cache.GameCache, error) {
	prefix := c.Prefix
	if prefix == "" {
		prefix = "main"
	}

	var storeOpts []cache.RedisStoreOpt
	if c.OpTimeout != "" {
		d, err := time.ParseDuration(c.OpTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing op_timeout: %w", err)
		}
		storeOpts = append(storeOpts, cache.WithOpTimeout(d))
	}

	var maxAge time.Duration
	if c.MaxGameAge != "" {
		d, err := time.ParseDuration(c.MaxGameAge)
		if err != nil {
			return nil, fmt.Errorf("parsing max_game_age: %w", err)
		}
		maxAge = d
	}

	client := redis.NewClient(&redis.Options{Addr: c.Addr})
	store := cache.NewRedisStore(client, prefix, storeOpts...)

	return cache.NewGameCache(store, maxAge), nil
}
