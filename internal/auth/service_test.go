// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/folio-api/internal/core"
	"github.com/carterperez-dev/folio-api/internal/user"
)

type fakeSessionRepo struct {
	sessions map[string]*SessionUser
	created  []*Session
	deleted  []string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*SessionUser)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *Session) error {
	session.ID = int64(len(f.created) + 1)
	f.created = append(f.created, session)
	return nil
}

func (f *fakeSessionRepo) FindUserByToken(
	_ context.Context,
	token string,
) (*SessionUser, error) {
	row, ok := f.sessions[token]
	if !ok || row.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("find session: %w", core.ErrNotFound)
	}
	return row, nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	delete(f.sessions, token)
	return nil
}

type fakeUserRepo struct {
	byUsername map[string]*user.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *user.User) error {
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*user.User, error) {
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (f *fakeUserRepo) GetByUsername(
	_ context.Context,
	username string,
) (*user.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("get user by username: %w", core.ErrNotFound)
	}
	return u, nil
}

func newTestService(t *testing.T) (*Service, *fakeSessionRepo) {
	t.Helper()

	hash, err := core.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	users := &fakeUserRepo{byUsername: map[string]*user.User{
		"admin": {
			ID:           1,
			Email:        "admin@example.com",
			Username:     "admin",
			PasswordHash: hash,
		},
	}}

	repo := newFakeSessionRepo()
	return NewService(repo, users, 24*time.Hour), repo
}

func TestLogin_CreatesSessionWithFixedExpiry(t *testing.T) {
	svc, repo := newTestService(t)

	before := time.Now()
	session, u, err := svc.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.NotEmpty(t, session.Token)
	assert.Len(t, repo.created, 1)

	wantExpiry := before.Add(24 * time.Hour)
	assert.WithinDuration(t, wantExpiry, session.ExpiresAt, 5*time.Second)
}

func TestLogin_ConcurrentSessionsAllowed(t *testing.T) {
	svc, repo := newTestService(t)

	req := LoginRequest{
		Username: "admin",
		Password: "correct horse battery staple",
	}

	first, _, err := svc.Login(context.Background(), req)
	require.NoError(t, err)
	second, _, err := svc.Login(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, repo.created, 2)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := newTestService(t)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, repo.created)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveUser_EmptyToken(t *testing.T) {
	svc, _ := newTestService(t)

	u, err := svc.ResolveUser(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestResolveUser_UnknownToken(t *testing.T) {
	svc, _ := newTestService(t)

	u, err := svc.ResolveUser(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestResolveUser_ExpiredToken(t *testing.T) {
	svc, repo := newTestService(t)

	repo.sessions["stale"] = &SessionUser{
		UserID:    1,
		Username:  "admin",
		Email:     "admin@example.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	u, err := svc.ResolveUser(context.Background(), "stale")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestResolveUser_ValidToken(t *testing.T) {
	svc, repo := newTestService(t)

	repo.sessions["live"] = &SessionUser{
		UserID:    1,
		Username:  "admin",
		Email:     "admin@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	u, err := svc.ResolveUser(context.Background(), "live")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, int64(1), u.ID)
}

func TestLogout_EmptyTokenNoop(t *testing.T) {
	svc, repo := newTestService(t)

	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.Empty(t, repo.deleted)
}

func TestLogout_DeletesSession(t *testing.T) {
	svc, repo := newTestService(t)

	repo.sessions["live"] = &SessionUser{UserID: 1}

	require.NoError(t, svc.Logout(context.Background(), "live"))
	assert.Equal(t, []string{"live"}, repo.deleted)
}

func TestLogout_UnknownTokenIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.Logout(context.Background(), "gone"))
	require.NoError(t, svc.Logout(context.Background(), "gone"))
}
