// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

// Session is a DB-backed login session. The token is opaque: a random string
// with no embedded structure, used only as a lookup key. A user may hold any
// number of concurrent sessions.
type Session struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
