// Package auth resolves request tokens into authenticated identities. Every
// file operation and the "who am I" endpoint route through the single Gate so
// token validation logic exists in exactly one place.
package auth

import (
	"context"
	"errors"

	"github.com/dkireev/filedepot/internal/server/sessions"
	"github.com/dkireev/filedepot/internal/server/users"
	"github.com/dkireev/filedepot/internal/shared"
)

// Gate authenticates bearer tokens against the session manager and loads the
// owning identity from the credential store.
type Gate struct {
	sessions *sessions.Manager
	users    users.Repository
}

func NewGate(sm *sessions.Manager, repo users.Repository) *Gate {
	return &Gate{sessions: sm, users: repo}
}

// Authenticate resolves token to a full identity. A missing, unknown or
// expired token is unauthorized, as is a token whose identity was deleted
// after issuance. Session store outages propagate as ErrorUnavailable.
func (g *Gate) Authenticate(ctx context.Context, token string) (*users.User, error) {

	if token == "" {
		return nil, shared.ErrorUnauthorized
	}

	userID, err := g.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorUnauthorized
		}
		return nil, err
	}

	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorUnauthorized
		}
		return nil, err
	}

	return user, nil
}
