// AngelaMos | 2026
// ordering_test.go

package catalog

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

func TestOrdering_Next_EmptyCollection(t *testing.T) {
	db, mock := newMockDB(t)
	ordering := NewOrdering("skills", `"order"`, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX("order") + 1, 0) FROM skills`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	next, err := ordering.Next(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrdering_Next_BaseOne(t *testing.T) {
	db, mock := newMockDB(t)
	ordering := NewOrdering("experience", "display_order", 1)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(display_order) + 1, 1) FROM experience`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))

	next, err := ordering.Next(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}

func TestOrdering_Next_AppendsAfterMax(t *testing.T) {
	db, mock := newMockDB(t)
	ordering := NewOrdering("skills", `"order"`, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX("order") + 1, 0) FROM skills`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4))

	next, err := ordering.Next(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 4, next)
}

func TestOrdering_ApplyReorder_AssignsSequentialPositions(t *testing.T) {
	db, mock := newMockDB(t)
	ordering := NewOrdering("skills", `"order"`, 0)

	update := regexp.QuoteMeta(`UPDATE skills SET "order" = $2 WHERE id = $1`)

	mock.ExpectExec(update).WithArgs(int64(3), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(update).WithArgs(int64(1), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(update).WithArgs(int64(2), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ordering.ApplyReorder(context.Background(), db, []int64{3, 1, 2})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrdering_ApplyReorder_UnknownIDSkipped(t *testing.T) {
	db, mock := newMockDB(t)
	ordering := NewOrdering("skills", `"order"`, 0)

	update := regexp.QuoteMeta(`UPDATE skills SET "order" = $2 WHERE id = $1`)

	mock.ExpectExec(update).WithArgs(int64(1), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// unknown row matches nothing and is silently skipped
	mock.ExpectExec(update).WithArgs(int64(99), 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(update).WithArgs(int64(2), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ordering.ApplyReorder(context.Background(), db, []int64{1, 99, 2})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrdering_ApplyReorder_DuplicateLastOccurrenceWins(t *testing.T) {
	db, mock := newMockDB(t)
	ordering := NewOrdering("experience", "display_order", 1)

	update := regexp.QuoteMeta(`UPDATE experience SET display_order = $2 WHERE id = $1`)

	// id 7 is written twice; the second write leaves it at position 3
	mock.ExpectExec(update).WithArgs(int64(7), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(update).WithArgs(int64(4), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(update).WithArgs(int64(7), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ordering.ApplyReorder(context.Background(), db, []int64{7, 4, 7})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
