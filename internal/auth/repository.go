// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/folio-api/internal/core"
)

// SessionUser is a session row joined with its owning user.
type SessionUser struct {
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	ExpiresAt time.Time `db:"expires_at"`
}

type Repository interface {
	Create(ctx context.Context, session *Session) error
	FindUserByToken(ctx context.Context, token string) (*SessionUser, error)
	DeleteByToken(ctx context.Context, token string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, session *Session) error {
	query := `
		INSERT INTO sessions (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.GetContext(ctx, &session.ID, query,
		session.UserID,
		session.Token,
		session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// FindUserByToken resolves a token to its owning user. Expired rows are
// treated the same as missing ones: expiry is enforced in the query, not by a
// background sweep.
func (r *repository) FindUserByToken(
	ctx context.Context,
	token string,
) (*SessionUser, error) {
	query := `
		SELECT s.user_id, u.username, u.email, s.expires_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > NOW()`

	var row SessionUser
	err := r.db.GetContext(ctx, &row, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find session: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &row, nil
}

// DeleteByToken is idempotent: deleting an unknown token is not an error.
func (r *repository) DeleteByToken(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
