package services

import (
	"context"
	"time"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Cache is the key/value store behind the route cache.
type Cache interface {
	HealthChecker

	// Set stores a value; an expiration of zero keeps it until deleted
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error

	// Get returns the stored value, or "" when the key is absent
	Get(ctx context.Context, key string) (string, error)

	// Del deletes one or more keys
	Del(ctx context.Context, keys ...string) error

	// Close closes the cache connection
	Close() error

	// WaitForConnection blocks until the cache answers or ctx ends
	WaitForConnection(ctx context.Context) error
}
