package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/app/models/dto"
	"github.com/acadio/backend/internal/app/repositories"
	"github.com/acadio/backend/internal/pkg/apperrors"
	"github.com/acadio/backend/internal/pkg/helpers"
)

// ProgramService handles the program catalog
type ProgramService struct {
	programRepo *repositories.ProgramRepository
}

// NewProgramService creates a new ProgramService
func NewProgramService(programRepo *repositories.ProgramRepository) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
	}
}

func programFromRequest(req *dto.ProgramRequest) (*models.Program, error) {
	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Start date must be a valid date in YYYY-MM-DD form")
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("End date must be a valid date in YYYY-MM-DD form")
	}
	if endDate.Before(startDate) {
		return nil, apperrors.NewValidationError("End date must not be before the start date")
	}

	return &models.Program{
		ProgramCode: req.ProgramCode,
		Name:        req.Name,
		Description: req.Description,
		Term:        req.Term,
		StartDate:   startDate,
		EndDate:     endDate,
		Fees:        req.Fees,
	}, nil
}

// GetAllPrograms returns the full program catalog
func (s *ProgramService) GetAllPrograms(ctx context.Context) ([]*models.Program, error) {
	programs, err := s.programRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, nil
}

// GetProgramByID returns a single program
func (s *ProgramService) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return nil, apperrors.NewNotFoundError("Program not found")
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}
	return program, nil
}

// CreateProgram adds a program to the catalog
func (s *ProgramService) CreateProgram(ctx context.Context, req *dto.ProgramRequest) (*models.Program, error) {
	program, err := programFromRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.programRepo.Create(ctx, program)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramCodeExists) {
			return nil, apperrors.NewConflictError("A program with this code already exists")
		}
		return nil, fmt.Errorf("error creating program: %w", err)
	}
	return created, nil
}

// UpdateProgram replaces a program's catalog fields
func (s *ProgramService) UpdateProgram(ctx context.Context, id int64, req *dto.ProgramRequest) (*models.Program, error) {
	program, err := programFromRequest(req)
	if err != nil {
		return nil, err
	}
	program.ID = id

	updated, err := s.programRepo.Update(ctx, program)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProgramNotFound):
			return nil, apperrors.NewNotFoundError("Program not found")
		case errors.Is(err, repositories.ErrProgramCodeExists):
			return nil, apperrors.NewConflictError("A program with this code already exists")
		}
		return nil, fmt.Errorf("error updating program: %w", err)
	}
	return updated, nil
}

// DeleteProgram removes a program from the catalog
func (s *ProgramService) DeleteProgram(ctx context.Context, id int64) error {
	err := s.programRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return apperrors.NewNotFoundError("Program not found")
		}
		return fmt.Errorf("error deleting program: %w", err)
	}
	return nil
}
