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

// Program error types
var (
	// ErrProgramCodeExists is returned when a program with the same code exists.
	ErrProgramCodeExists = errors.New("program with this code already exists")
)

// ProgramRepository handles program catalog database operations
type ProgramRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db DB) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanProgram(row pgx.Row) (*models.Program, error) {
	program := &models.Program{}
	err := row.Scan(
		&program.ID, &program.ProgramCode, &program.Name, &program.Description,
		&program.Term, &program.StartDate, &program.EndDate, &program.Fees,
	)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// GetAll retrieves the full program catalog
func (r *ProgramRepository) GetAll(ctx context.Context) ([]*models.Program, error) {
	sql, args, err := r.sb.Select(programColumns...).
		From("programs").
		OrderBy("program_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.Program{}
	for rows.Next() {
		program := &models.Program{}
		err := rows.Scan(
			&program.ID, &program.ProgramCode, &program.Name, &program.Description,
			&program.Term, &program.StartDate, &program.EndDate, &program.Fees,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}

	return programs, nil
}

// GetByID retrieves a program by id
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	sql, args, err := r.sb.Select(programColumns...).
		From("programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program, err := scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("error getting program by id: %w", err)
	}

	return program, nil
}

// Create inserts a new program and returns the stored row
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) (*models.Program, error) {
	sql, args, err := r.sb.Insert("programs").
		Columns("program_code", "name", "description", "term", "start_date", "end_date", "fees").
		Values(program.ProgramCode, program.Name, program.Description, program.Term, program.StartDate, program.EndDate, program.Fees).
		Suffix("RETURNING id, program_code, name, description, term, start_date, end_date, fees").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create program query: %w", err)
	}

	created, err := scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrProgramCodeExists
		}
		return nil, fmt.Errorf("error creating program: %w", err)
	}

	return created, nil
}

// Update replaces a program's fields and returns the stored row
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) (*models.Program, error) {
	sql, args, err := r.sb.Update("programs").
		Set("program_code", program.ProgramCode).
		Set("name", program.Name).
		Set("description", program.Description).
		Set("term", program.Term).
		Set("start_date", program.StartDate).
		Set("end_date", program.EndDate).
		Set("fees", program.Fees).
		Where(squirrel.Eq{"id": program.ID}).
		Suffix("RETURNING id, program_code, name, description, term, start_date, end_date, fees").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update program query: %w", err)
	}

	updated, err := scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrProgramCodeExists
		}
		return nil, fmt.Errorf("error updating program: %w", err)
	}

	return updated, nil
}

// Delete removes a program by id
func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}
