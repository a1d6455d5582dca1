package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Shared repository errors
var (
	// ErrNotFound is returned when the target row does not exist.
	ErrNotFound = errors.New("not found")
)

// DB is the subset of pgxpool.Pool the repositories use.
// Keeping it an interface lets tests substitute a mocked pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	ProgramRepository    *ProgramRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	MessageRepository    *MessageRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		ProgramRepository:    NewProgramRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		MessageRepository:    NewMessageRepository(db),
	}
}
