// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"

	"github.com/carterperez-dev/folio-api/internal/core"
	"github.com/carterperez-dev/folio-api/internal/user"
)

const (
	UserKey         contextKey = "user"
	SessionTokenKey contextKey = "session_token"
)

// UserResolver resolves a session token to its owning user. A nil user with a
// nil error means the token is missing, unknown or expired.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*user.User, error)
}

// Authenticator gates every admin operation: it reads the session cookie,
// resolves the user and rejects the request before any handler runs.
func Authenticator(
	resolver UserResolver,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractSessionToken(r, cookieName)

			u, err := resolver.ResolveUser(r.Context(), token)
			if err != nil {
				core.InternalServerError(w, err)
				return
			}

			if u == nil {
				core.JSONError(
					w,
					core.UnauthorizedError("missing or expired session"),
				)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserKey, u)
			ctx = context.WithValue(ctx, SessionTokenKey, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ExtractSessionToken(r *http.Request, cookieName string) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func GetUser(ctx context.Context) *user.User {
	if u, ok := ctx.Value(UserKey).(*user.User); ok {
		return u
	}
	return nil
}

func GetUserID(ctx context.Context) int64 {
	if u := GetUser(ctx); u != nil {
		return u.ID
	}
	return 0
}

func GetSessionToken(ctx context.Context) string {
	if token, ok := ctx.Value(SessionTokenKey).(string); ok {
		return token
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUser(ctx) != nil
}
