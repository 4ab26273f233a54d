package domain

import (
	"context"
	"time"
)

// CacheError is a sentinel error raised by Cache implementations.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss reports an absent or expired key.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache stores serialized values, currently the category list.
type Cache interface {
	// Get fails with ErrCacheMiss for absent keys.
	Get(ctx context.Context, key string) (string, error)
	// Set replaces the value; a zero ttl keeps it until deleted.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete succeeds for absent keys.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
