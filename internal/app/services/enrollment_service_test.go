package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadio/backend/internal/app/repositories"
	"github.com/acadio/backend/internal/pkg/apperrors"
)

func newEnrollmentService(t *testing.T) (pgxmock.PgxPoolIface, *EnrollmentService) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := repositories.NewEnrollmentRepository(mock)
	return mock, NewEnrollmentService(repo, zerolog.Nop())
}

func TestSubscribeProgramConflict(t *testing.T) {
	mock, svc := newEnrollmentService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM users_programs WHERE user_id = $1 LIMIT 1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.SubscribeProgram(context.Background(), 7, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "You are already subscribed to a program. Unsubscribe first.", err.Error())
}

func TestUnsubscribeProgramNotFound(t *testing.T) {
	mock, svc := newEnrollmentService(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users_courses").
		WithArgs(int64(7), int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM users_programs").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := svc.UnsubscribeProgram(context.Background(), 7, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "You are not subscribed to this program", err.Error())
}

func TestSubscribeCoursePrecondition(t *testing.T) {
	mock, svc := newEnrollmentService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT program_id FROM courses WHERE id = $1")).
		WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows([]string{"program_id"}).AddRow(int64(3)))
	mock.ExpectQuery("SELECT 1 FROM users_programs").
		WithArgs(int64(3), int64(7)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	err := svc.SubscribeCourse(context.Background(), 7, 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPreconditionFailed)
	assert.Equal(t, "You must be subscribed to the program to enroll in this course", err.Error())
}

func TestSubscribeCourseConflict(t *testing.T) {
	mock, svc := newEnrollmentService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT program_id FROM courses WHERE id = $1")).
		WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows([]string{"program_id"}).AddRow(int64(3)))
	mock.ExpectQuery("SELECT 1 FROM users_programs").
		WithArgs(int64(3), int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM users_courses").
		WithArgs(int64(11), int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectRollback()

	err := svc.SubscribeCourse(context.Background(), 7, 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Already subscribed to this course", err.Error())
}

func TestGetMyProgramEmptyIsNotAnError(t *testing.T) {
	mock, svc := newEnrollmentService(t)

	mock.ExpectQuery("SELECT .+ FROM programs p JOIN users_programs up").
		WithArgs(int64(7)).
		WillReturnError(pgx.ErrNoRows)

	program, err := svc.GetMyProgram(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, program)
}

func TestUnsubscribeCourseNotFound(t *testing.T) {
	mock, svc := newEnrollmentService(t)

	mock.ExpectExec("DELETE FROM users_courses").
		WithArgs(int64(11), int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.UnsubscribeCourse(context.Background(), 7, 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "You are not subscribed to this course", err.Error())
}
