// AngelaMos | 2026
// handler_test.go

package experience

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, sqlmock.Sqlmock) {
	t.Helper()

	svc, mock := newMockService(t)

	passthrough := func(next http.Handler) http.Handler { return next }

	r := chi.NewRouter()
	NewHandler(svc).RegisterAdminRoutes(r, passthrough)
	return r, mock
}

func TestCreateHandler_EchoesStoredSkillIDs(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(MAX(display_order) + 1, 1) FROM experience`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO experience`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM experience_skills WHERE experience_id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// the repeated id lands once in the junction table
	insert := regexp.QuoteMeta(`INSERT INTO experience_skills`)
	mock.ExpectExec(insert).WithArgs(int64(4), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).WithArgs(int64(4), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"period":"2024 - Present","position":"Engineer",` +
		`"company":"Acme","skill_ids":[2,2,6]}`
	req := httptest.NewRequest(http.MethodPost, "/admin/experience",
		strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"skill_ids":[2,6]`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
