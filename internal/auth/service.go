// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/folio-api/internal/core"
	"github.com/carterperez-dev/folio-api/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo            Repository
	users           user.Repository
	sessionDuration time.Duration
}

func NewService(
	repo Repository,
	users user.Repository,
	sessionDuration time.Duration,
) *Service {
	return &Service{
		repo:            repo,
		users:           users,
		sessionDuration: sessionDuration,
	}
}

// Login verifies credentials and creates exactly one new session with a fresh
// opaque token and a fixed expiry. Existing sessions for the user are left
// alone: concurrent sessions are allowed.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*Session, *user.User, error) {
	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &u.PasswordHash)
	if err != nil {
		return nil, nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := core.GenerateSessionToken()
	if err != nil {
		return nil, nil, fmt.Errorf("generate session token: %w", err)
	}

	session := &Session{
		UserID:    u.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessionDuration),
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("store session: %w", err)
	}

	return session, u, nil
}

// ResolveUser maps a session token to its owner. Missing, malformed and
// expired tokens all resolve to (nil, nil) rather than an error; callers map
// nil uniformly to an unauthorized response. The lookup has no side effects:
// no rotation, no sliding expiry.
func (s *Service) ResolveUser(
	ctx context.Context,
	token string,
) (*user.User, error) {
	if token == "" {
		return nil, nil
	}

	row, err := s.repo.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	return &user.User{
		ID:       row.UserID,
		Username: row.Username,
		Email:    row.Email,
	}, nil
}

// Logout deletes the session row; this is the only explicit invalidation path.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.repo.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

func (s *Service) SessionDuration() time.Duration {
	return s.sessionDuration
}
