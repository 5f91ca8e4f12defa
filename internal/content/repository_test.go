// AngelaMos | 2026
// repository_test.go

package content

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/folio-api/internal/core"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestGetAbout(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, content FROM about WHERE id = 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content"}).
			AddRow(1, "hello"))

	about, err := repo.GetAbout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", about.Content)
}

func TestUpdateAbout_MissingSingleton(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE about SET content = $1 WHERE id = 1`)).
		WithArgs("hello").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAbout(context.Background(), "hello")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSetCounter(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE counter_projects SET number = $1 WHERE id = 1`)).
		WithArgs(12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetCounter(context.Background(), "counter_projects", 12)
	require.NoError(t, err)
}

func TestRecountProjects(t *testing.T) {
	repo, mock := newMockRepo(t)

	db, innerMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	executor := sqlx.NewDb(db, "sqlmock")

	innerMock.ExpectExec(regexp.QuoteMeta(
		`UPDATE counter_projects SET number = (SELECT COUNT(*) FROM projects) WHERE id = 1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RecountProjects(context.Background(), executor))
	assert.NoError(t, innerMock.ExpectationsWereMet())
	assert.NoError(t, mock.ExpectationsWereMet())
}
