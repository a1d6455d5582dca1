package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/pkg/dberrors"
)

// Course error types
var (
	// ErrCourseCodeExists is returned when a course with the same code exists.
	ErrCourseCodeExists = errors.New("course with this code already exists")
)

// CourseRepository handles course catalog database operations
type CourseRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DB) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.CourseCode, &course.Name, &course.Description,
		&course.Term, &course.StartDate, &course.EndDate, &course.ProgramID,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetAll retrieves the full course catalog
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("course_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
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

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course by id: %w", err)
	}

	return course, nil
}

// Create inserts a new course and returns the stored row
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_code", "name", "description", "term", "start_date", "end_date", "program_id").
		Values(course.CourseCode, course.Name, course.Description, course.Term, course.StartDate, course.EndDate, course.ProgramID).
		Suffix("RETURNING id, course_code, name, description, term, start_date, end_date, program_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create course query: %w", err)
	}

	created, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrCourseCodeExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return created, nil
}

// Update replaces a course's fields and returns the stored row
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	sql, args, err := r.sb.Update("courses").
		Set("course_code", course.CourseCode).
		Set("name", course.Name).
		Set("description", course.Description).
		Set("term", course.Term).
		Set("start_date", course.StartDate).
		Set("end_date", course.EndDate).
		Set("program_id", course.ProgramID).
		Where(squirrel.Eq{"id": course.ID}).
		Suffix("RETURNING id, course_code, name, description, term, start_date, end_date, program_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update course query: %w", err)
	}

	updated, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrCourseCodeExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return updated, nil
}

// Delete removes a course by id
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}
