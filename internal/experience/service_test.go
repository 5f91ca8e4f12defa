// AngelaMos | 2026
// service_test.go

package experience

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCreate_FirstEntryGetsPositionOne(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(MAX(display_order) + 1, 1) FROM experience`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO experience`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	entry, err := svc.Create(context.Background(), CreateExperienceRequest{
		Period:   "2024 - 2026",
		Position: "Backend Engineer",
		Company:  "Acme",
	})
	require.NoError(t, err)

	require.NotNil(t, entry.DisplayOrder)
	assert.Equal(t, 1, *entry.DisplayOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_LinksSkills(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(MAX(display_order) + 1, 1) FROM experience`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO experience`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM experience_skills WHERE experience_id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO experience_skills`)).
		WithArgs(int64(4), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := svc.Create(context.Background(), CreateExperienceRequest{
		Period:   "2024 - 2026",
		Position: "Backend Engineer",
		Company:  "Acme",
		SkillIDs: []int64{2},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReorder_StartsAtOne(t *testing.T) {
	svc, mock := newMockService(t)

	update := regexp.QuoteMeta(
		`UPDATE experience SET display_order = $2 WHERE id = $1`)

	mock.ExpectBegin()
	mock.ExpectExec(update).WithArgs(int64(5), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(update).WithArgs(int64(3), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Reorder(context.Background(), []int64{5, 3}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
