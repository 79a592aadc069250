package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dkireev/filedepot/internal/logging"
	"github.com/dkireev/filedepot/internal/server/sessions"
	"github.com/dkireev/filedepot/internal/shared"
)

// Service implements registration and the credential-to-session exchange.
type Service struct {
	repo     Repository
	sessions *sessions.Manager
	logger   logging.Logger
}

func NewService(repo Repository, sm *sessions.Manager, logger logging.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sm,
		logger:   logger.With("module", "users"),
	}
}

// Register creates a new identity. The password is stored only as a one-way
// hash. A duplicate email reports shared.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {

	if email == "" {
		return nil, shared.ErrorMissingEmail
	}
	if password == "" {
		return nil, shared.ErrorMissingPassword
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, shared.ErrorAlreadyExists
	}
	if !errors.Is(err, shared.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %s", shared.ErrorUnavailable, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hash: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, shared.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", shared.ErrorUnavailable, err)
	}

	return user, nil
}

// Login validates the credentials and issues a session token. A failed
// session store write is logged and swallowed: login proceeds without a
// durable session rather than failing on a transient cache outage.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return "", shared.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: %s", shared.ErrorUnavailable, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", shared.ErrorUnauthorized
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		s.logger.Error(ctx, "session store write failed, proceeding without durable session", "error", err.Error())
	}

	return token, nil
}

// Logout revokes the session behind the token. An unknown token is
// unauthorized; a token that disappeared between resolve and revoke counts
// as already logged out.
func (s *Service) Logout(ctx context.Context, token string) error {

	if token == "" {
		return shared.ErrorUnauthorized
	}

	if _, err := s.sessions.Resolve(ctx, token); err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return shared.ErrorUnauthorized
		}
		return err
	}

	if err := s.sessions.Revoke(ctx, token); err != nil && !errors.Is(err, shared.ErrorNotFound) {
		return err
	}

	return nil
}

// Count reports the number of registered identities.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
