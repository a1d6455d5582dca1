package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/app/models/dto"
)

// User error types
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = ErrNotFound
)

// UserRepository handles user database operations
type UserRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var userColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "birthday", "username", "password", "role", "created_at",
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone,
		&user.Birthday, &user.Username, &user.Password, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user and returns its id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("first_name", "last_name", "email", "phone", "birthday", "username", "password", "role").
		Values(user.FirstName, user.LastName, user.Email, user.Phone, user.Birthday, user.Username, user.Password, user.Role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err = r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// FindByID retrieves a user by id
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}

	return user, nil
}

// FindByUsername retrieves a user by username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}

	return user, nil
}

// UsernameExists reports whether a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"username": username})
}

// EmailExists reports whether an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) exists(ctx context.Context, pred squirrel.Eq) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking user existence: %w", err)
	}

	return true, nil
}

// GetProfile returns the user together with their enrolled program, resolved
// through the users_programs relation.
func (r *UserRepository) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	sql, args, err := r.sb.Select(
		"u.id", "u.first_name", "u.last_name", "u.email", "u.phone", "u.birthday", "u.username", "u.role",
		"p.id AS program_id", "p.name AS program_name", "p.description AS program_description",
	).
		From("users u").
		LeftJoin("users_programs up ON up.user_id = u.id").
		LeftJoin("programs p ON p.id = up.program_id").
		Where(squirrel.Eq{"u.id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build profile query: %w", err)
	}

	profile := &dto.ProfileResponse{}
	var programID *int64
	var programName, programDescription *string
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.ID, &profile.FirstName, &profile.LastName, &profile.Email, &profile.Phone,
		&profile.Birthday, &profile.Username, &profile.Role,
		&programID, &programName, &programDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user profile: %w", err)
	}

	profile.ProgramID = programID
	if programName != nil {
		profile.Program = &dto.ProgramSummary{Name: *programName}
		if programDescription != nil {
			profile.Program.Description = *programDescription
		}
	}

	return profile, nil
}

// ListStudents returns all student accounts with their enrolled program name,
// resolved through the users_programs relation.
func (r *UserRepository) ListStudents(ctx context.Context) ([]*dto.StudentListItem, error) {
	sql, args, err := r.sb.Select(
		"u.id", "u.first_name", "u.last_name", "u.email", "u.username",
		"p.name AS program_name",
	).
		From("users u").
		LeftJoin("users_programs up ON up.user_id = u.id").
		LeftJoin("programs p ON p.id = up.program_id").
		Where(squirrel.Eq{"u.role": models.RoleStudent}).
		OrderBy("u.last_name ASC", "u.first_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*dto.StudentListItem{}
	for rows.Next() {
		student := &dto.StudentListItem{}
		err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName,
			&student.Email, &student.Username, &student.ProgramName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	return students, nil
}
