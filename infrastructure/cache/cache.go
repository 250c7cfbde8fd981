// Package cache provides the lookaside key-value cache used by the read
// paths. The cache is never authoritative: every entry is reconstructable
// from Postgres, and callers must treat failures as misses.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Ping(ctx context.Context) error
}

// Disabled is a Cache that always misses. Read paths fall through to the
// database and produce identical results, just slower.
type Disabled struct{}

func (Disabled) Get(ctx context.Context, key string) (string, error) {
	return "", ErrCacheMiss
}

func (Disabled) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return nil
}

func (Disabled) Ping(ctx context.Context) error {
	return nil
}
