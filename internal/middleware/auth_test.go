// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/folio-api/internal/user"
)

type fakeResolver struct {
	users map[string]*user.User
	err   error
}

func (f *fakeResolver) ResolveUser(
	_ context.Context,
	token string,
) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[token], nil
}

func okHandler(t *testing.T, gotUser **user.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUser = GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticator_NoCookie(t *testing.T) {
	resolver := &fakeResolver{users: map[string]*user.User{}}

	var got *user.User
	handler := Authenticator(resolver, "folio_session")(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, got)
}

func TestAuthenticator_UnknownToken(t *testing.T) {
	resolver := &fakeResolver{users: map[string]*user.User{}}

	var got *user.User
	handler := Authenticator(resolver, "folio_session")(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "folio_session", Value: "bogus"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticator_ValidToken(t *testing.T) {
	resolver := &fakeResolver{users: map[string]*user.User{
		"token-1": {ID: 1, Username: "admin"},
	}}

	var got *user.User
	handler := Authenticator(resolver, "folio_session")(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "folio_session", Value: "token-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Username)
}

func TestAuthenticator_ResolverError(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("db down")}

	var got *user.User
	handler := Authenticator(resolver, "folio_session")(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "folio_session", Value: "token-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetUser(ctx))
	assert.Zero(t, GetUserID(ctx))
	assert.Empty(t, GetSessionToken(ctx))
	assert.False(t, IsAuthenticated(ctx))

	u := &user.User{ID: 7}
	ctx = context.WithValue(ctx, UserKey, u)
	ctx = context.WithValue(ctx, SessionTokenKey, "tok")

	assert.Equal(t, u, GetUser(ctx))
	assert.Equal(t, int64(7), GetUserID(ctx))
	assert.Equal(t, "tok", GetSessionToken(ctx))
	assert.True(t, IsAuthenticated(ctx))
}
