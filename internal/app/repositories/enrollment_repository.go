package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/pkg/dberrors"
	"github.com/acadio/backend/internal/pkg/logger"
)

// Enrollment error types
var (
	// ErrAlreadySubscribedToProgram is returned when the user already holds a program enrollment row.
	ErrAlreadySubscribedToProgram = errors.New("user already has a program enrollment")
	// ErrNotSubscribedToProgram is returned when no program enrollment row exists for the pair.
	ErrNotSubscribedToProgram = errors.New("user is not subscribed to this program")
	// ErrProgramNotFound is returned when the program row is absent.
	ErrProgramNotFound = errors.New("program not found")
	// ErrCourseNotFound is returned when the course row is absent.
	ErrCourseNotFound = errors.New("course not found")
	// ErrProgramMembershipRequired is returned when the user is not enrolled in the course's owning program.
	ErrProgramMembershipRequired = errors.New("user is not enrolled in the course's program")
	// ErrAlreadySubscribedToCourse is returned when a course enrollment row already exists for the pair.
	ErrAlreadySubscribedToCourse = errors.New("user is already subscribed to this course")
	// ErrNotSubscribedToCourse is returned when no course enrollment row exists for the pair.
	ErrNotSubscribedToCourse = errors.New("user is not subscribed to this course")
)

// EnrollmentRepository handles the users_programs and users_courses relations.
// Every multi-statement operation runs in a single transaction so the
// enrollment invariants are never observable half-applied.
type EnrollmentRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var programColumns = []string{
	"id", "program_code", "name", "description", "term", "start_date", "end_date", "fees",
}

var courseColumns = []string{
	"id", "course_code", "name", "description", "term", "start_date", "end_date", "program_id",
}

// SubscribeProgram enrolls the user in a program and returns the full program
// record. The existence check and the insert happen in one transaction, and the
// users_programs UNIQUE(user_id) constraint backstops concurrent subscribers,
// so a user can never end up with two program rows.
func (r *EnrollmentRepository) SubscribeProgram(ctx context.Context, userID, programID int64) (*models.Program, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := r.sb.Select("1").
		From("users_programs").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build subscription check query: %w", err)
	}

	var exists int
	err = tx.QueryRow(ctx, sql, args...).Scan(&exists)
	if err == nil {
		return nil, ErrAlreadySubscribedToProgram
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error checking existing program subscription: %w", err)
	}

	sql, args, err = r.sb.Insert("users_programs").
		Columns("user_id", "program_id").
		Values(userID, programID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build subscribe query: %w", err)
	}

	if _, err = tx.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			// A concurrent subscribe won the race between our check and insert.
			return nil, ErrAlreadySubscribedToProgram
		}
		// Only the program-side FK means a missing program; a user-side
		// violation must not be reported as one.
		if dberrors.IsForeignKeyConstraintViolation(err, "users_programs_program_id_fkey") {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("error inserting program subscription: %w", err)
	}

	// Re-fetch the program so the caller gets the full record.
	sql, args, err = r.sb.Select(programColumns...).
		From("programs").
		Where(squirrel.Eq{"id": programID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build program fetch query: %w", err)
	}

	program := &models.Program{}
	err = tx.QueryRow(ctx, sql, args...).Scan(
		&program.ID, &program.ProgramCode, &program.Name, &program.Description,
		&program.Term, &program.StartDate, &program.EndDate, &program.Fees,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		logger.Error().Err(err).Int64("programID", programID).Msg("Error scanning program row after subscribe")
		return nil, fmt.Errorf("error fetching program after subscription: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return program, nil
}

// UnsubscribeProgram removes the user's enrollment in the program together with
// every course enrollment the user holds under that program. Both deletes are
// one transaction: a concurrent reader never sees the program row gone while
// stale course rows remain, or the other way around.
func (r *EnrollmentRepository) UnsubscribeProgram(ctx context.Context, userID, programID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Cascade first: drop the user's course enrollments under this program.
	sql, args, err := r.sb.Delete("users_courses").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Expr("course_id IN (SELECT id FROM courses WHERE program_id = ?)", programID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build course cascade query: %w", err)
	}

	if _, err = tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting course enrollments: %w", err)
	}

	sql, args, err = r.sb.Delete("users_programs").
		Where(squirrel.Eq{"user_id": userID, "program_id": programID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build unsubscribe query: %w", err)
	}

	result, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting program subscription: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotSubscribedToProgram
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetProgramByUserID returns the user's enrolled program, or nil when the user
// has no program enrollment.
func (r *EnrollmentRepository) GetProgramByUserID(ctx context.Context, userID int64) (*models.Program, error) {
	sql, args, err := r.sb.Select(
		"p.id", "p.program_code", "p.name", "p.description", "p.term", "p.start_date", "p.end_date", "p.fees",
	).
		From("programs p").
		Join("users_programs up ON up.program_id = p.id").
		Where(squirrel.Eq{"up.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user program query: %w", err)
	}

	program := &models.Program{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&program.ID, &program.ProgramCode, &program.Name, &program.Description,
		&program.Term, &program.StartDate, &program.EndDate, &program.Fees,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user program: %w", err)
	}

	return program, nil
}

// SubscribeCourse enrolls the user in a course. The owning-program membership
// check, the duplicate pre-check and the insert run in one transaction; the
// UNIQUE(user_id, course_id) constraint covers the remaining race between two
// concurrent subscribers.
func (r *EnrollmentRepository) SubscribeCourse(ctx context.Context, userID, courseID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := r.sb.Select("program_id").
		From("courses").
		Where(squirrel.Eq{"id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build course lookup query: %w", err)
	}

	var programID int64
	if err = tx.QueryRow(ctx, sql, args...).Scan(&programID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("error looking up course: %w", err)
	}

	sql, args, err = r.sb.Select("1").
		From("users_programs").
		Where(squirrel.Eq{"user_id": userID, "program_id": programID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build membership check query: %w", err)
	}

	var exists int
	err = tx.QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProgramMembershipRequired
	}
	if err != nil {
		return fmt.Errorf("error checking program membership: %w", err)
	}

	sql, args, err = r.sb.Select("1").
		From("users_courses").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build duplicate check query: %w", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&exists)
	if err == nil {
		return ErrAlreadySubscribedToCourse
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error checking existing course subscription: %w", err)
	}

	sql, args, err = r.sb.Insert("users_courses").
		Columns("user_id", "course_id").
		Values(userID, courseID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build course subscribe query: %w", err)
	}

	if _, err = tx.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrAlreadySubscribedToCourse
		}
		return fmt.Errorf("error inserting course subscription: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UnsubscribeCourse removes the user's enrollment in a single course
func (r *EnrollmentRepository) UnsubscribeCourse(ctx context.Context, userID, courseID int64) error {
	sql, args, err := r.sb.Delete("users_courses").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build course unsubscribe query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting course subscription: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotSubscribedToCourse
	}

	return nil
}

// GetCoursesByUserID returns all course records the user is enrolled in
func (r *EnrollmentRepository) GetCoursesByUserID(ctx context.Context, userID int64) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.course_code", "c.name", "c.description", "c.term", "c.start_date", "c.end_date", "c.program_id",
	).
		From("courses c").
		Join("users_courses uc ON uc.course_id = c.id").
		Where(squirrel.Eq{"uc.user_id": userID}).
		OrderBy("c.course_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying user courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		err := rows.Scan(
			&course.ID, &course.CourseCode, &course.Name, &course.Description,
			&course.Term, &course.StartDate, &course.EndDate, &course.ProgramID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, nil
}
