package controllers

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadio/backend/internal/app/repositories"
	"github.com/acadio/backend/internal/app/services"
	"github.com/acadio/backend/internal/middleware"
)

// newEnrollmentRouter wires the enrollment endpoints against a mocked pool,
// with the caller identity injected the way the JWT middleware would.
func newEnrollmentRouter(t *testing.T, userID int64) (pgxmock.PgxPoolIface, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	enrollmentService := services.NewEnrollmentService(repositories.NewEnrollmentRepository(mock), zerolog.Nop())
	programService := services.NewProgramService(repositories.NewProgramRepository(mock))
	controller := NewProgramController(programService, enrollmentService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
	})
	router.POST("/api/programs/subscribe/:id", controller.Subscribe)
	router.DELETE("/api/programs/unsubscribe/:id", controller.Unsubscribe)

	return mock, router
}

func TestSubscribeProgramEndpoint(t *testing.T) {
	mock, router := newEnrollmentRouter(t, 7)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM users_programs").
		WithArgs(int64(7)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec("INSERT INTO users_programs").
		WithArgs(int64(7), int64(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, program_code, name, description, term, start_date, end_date, fees FROM programs WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "program_code", "name", "description", "term", "start_date", "end_date", "fees"}).
			AddRow(int64(3), "CS", "Computer Science", "desc", "Fall", start, start.AddDate(0, 9, 0), 4200.0))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/programs/subscribe/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"program_code":"CS"`)
	assert.Contains(t, w.Body.String(), `"message":"Subscribed to program"`)
}

func TestSubscribeProgramEndpointConflict(t *testing.T) {
	mock, router := newEnrollmentRouter(t, 7)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM users_programs").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/programs/subscribe/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"You are already subscribed to a program. Unsubscribe first."}`, w.Body.String())
}

func TestUnsubscribeProgramEndpointNotSubscribed(t *testing.T) {
	mock, router := newEnrollmentRouter(t, 7)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users_courses").
		WithArgs(int64(7), int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM users_programs").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/programs/unsubscribe/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"You are not subscribed to this program"}`, w.Body.String())
}

func TestSubscribeProgramEndpointBadID(t *testing.T) {
	_, router := newEnrollmentRouter(t, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/programs/subscribe/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid program ID"}`, w.Body.String())
}
