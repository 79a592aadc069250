package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// KeyPrefix namespaces session keys in the shared key-value store.
const KeyPrefix = "auth_"

// Manager issues, resolves and revokes opaque session tokens. The store, not
// the manager, enforces expiration: a token past its TTL simply stops
// resolving.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Issue generates a random opaque token and maps it to userID for the
// configured TTL. The token is returned even when the store write fails, so
// the caller can decide whether to treat the session store as a soft
// dependency.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.New().String()
	err := m.store.Set(ctx, KeyPrefix+token, userID, m.ttl)
	return token, err
}

// Resolve returns the identity id owning the token. A missing or expired
// token yields shared.ErrorNotFound.
func (m *Manager) Resolve(ctx context.Context, token string) (string, error) {
	return m.store.Get(ctx, KeyPrefix+token)
}

// Revoke deletes the token mapping. A missing key reports
// shared.ErrorNotFound, which callers treat as "already logged out".
func (m *Manager) Revoke(ctx context.Context, token string) error {
	return m.store.Del(ctx, KeyPrefix+token)
}
