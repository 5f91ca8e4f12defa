// AngelaMos | 2026
// links_test.go

package links

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestReplace_DeletesThenInsertsDeduped(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewManager("project_skills", "project_id")

	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM project_skills WHERE project_id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	insert := regexp.QuoteMeta(
		`INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`)

	mock.ExpectExec(insert).WithArgs(int64(9), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).WithArgs(int64(9), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := m.Replace(context.Background(), db, 9, []int64{5, 5, 7})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_EmptySetOnlyDeletes(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewManager("experience_skills", "experience_id")

	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM experience_skills WHERE experience_id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := m.Replace(context.Background(), db, 4, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillIDs(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewManager("project_skills", "project_id")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT skill_id FROM project_skills WHERE project_id = $1`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"skill_id"}).
			AddRow(5).AddRow(7))

	ids, err := m.SkillIDs(context.Background(), db, 9)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 7}, ids)
}

func TestSkillIDs_NoneLinked(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewManager("project_skills", "project_id")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT skill_id FROM project_skills WHERE project_id = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"skill_id"}))

	ids, err := m.SkillIDs(context.Background(), db, 3)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDedupe_PreservesFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, Dedupe([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, Dedupe(nil))
}
