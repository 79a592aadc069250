// Package sessions implements opaque-token session management backed by an
// expiring key-value store.
package sessions

import (
	"context"
	"time"
)

// Store is a key-value store with per-key expiration. Implementations must be
// safe for concurrent use by multiple request handlers.
//
// Get and Del report a missing key as shared.ErrorNotFound. Any transport or
// server failure is reported wrapped in shared.ErrorUnavailable.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
