// AngelaMos | 2026
// service_test.go

package projects

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

type fakeCounter struct {
	recounts int
}

func (f *fakeCounter) RecountProjects(_ context.Context, _ core.DBTX) error {
	f.recounts++
	return nil
}

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock, *fakeCounter) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	counter := &fakeCounter{}
	return NewService(sqlx.NewDb(db, "sqlmock"), counter), mock, counter
}

func TestCreate_LinksSkillsAndRecounts(t *testing.T) {
	svc, mock, counter := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(MAX("order") + 1, 0) FROM projects`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO projects`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM project_skills WHERE project_id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO project_skills`)).
		WithArgs(int64(9), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	project, err := svc.Create(context.Background(), CreateProjectRequest{
		Title:    "Portfolio",
		SkillIDs: []int64{5},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), project.ID)
	require.NotNil(t, project.Order)
	assert.Equal(t, 2, *project.Order)
	assert.Equal(t, 1, counter.recounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NoSkillsStillRecounts(t *testing.T) {
	svc, mock, counter := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(MAX("order") + 1, 0) FROM projects`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO projects`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	_, err := svc.Create(context.Background(), CreateProjectRequest{
		Title: "Portfolio",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, counter.recounts)
}

func TestCreate_DuplicateTitlesAllowed(t *testing.T) {
	svc, mock, _ := newMockService(t)

	for _, id := range []int64{1, 2} {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT COALESCE(MAX("order") + 1, 0) FROM projects`)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int(id - 1)))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO projects`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectCommit()
	}

	first, err := svc.Create(context.Background(), CreateProjectRequest{
		Title: "Portfolio",
	})
	require.NoError(t, err)

	// titles are not unique: the same title inserts a second row
	second, err := svc.Create(context.Background(), CreateProjectRequest{
		Title: "Portfolio",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_RecountsInSameTransaction(t *testing.T) {
	svc, mock, counter := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM projects WHERE id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, 1, counter.recounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFoundSkipsRecount(t *testing.T) {
	svc, mock, counter := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM projects WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Zero(t, counter.recounts)
}

func TestUpdate_NilSkillIDsLeavesLinksAlone(t *testing.T) {
	svc, mock, _ := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "title", "description", "image", "link", "order", "archived"}).
			AddRow(9, "Old", nil, nil, nil, 0, false))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE projects`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	project, err := svc.Update(context.Background(), 9, UpdateProjectRequest{
		Title: "New",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", project.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_EmptySkillIDsClearsLinks(t *testing.T) {
	svc, mock, _ := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "title", "description", "image", "link", "order", "archived"}).
			AddRow(9, "Old", nil, nil, nil, 0, false))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE projects`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM project_skills WHERE project_id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	empty := []int64{}
	_, err := svc.Update(context.Background(), 9, UpdateProjectRequest{
		Title:    "New",
		SkillIDs: &empty,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_ReturnsLinkedSkillIDs(t *testing.T) {
	svc, mock, _ := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "title", "description", "image", "link", "order", "archived"}).
			AddRow(9, "Portfolio", nil, nil, nil, 0, false))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT skill_id FROM project_skills WHERE project_id = $1`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"skill_id"}).AddRow(5).AddRow(7))

	project, skillIDs, err := svc.Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", project.Title)
	assert.Equal(t, []int64{5, 7}, skillIDs)
}
