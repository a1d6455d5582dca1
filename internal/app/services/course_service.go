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

// CourseService handles the course catalog
type CourseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

func courseFromRequest(req *dto.CourseRequest) (*models.Course, error) {
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

	return &models.Course{
		CourseCode:  req.CourseCode,
		Name:        req.Name,
		Description: req.Description,
		Term:        req.Term,
		StartDate:   startDate,
		EndDate:     endDate,
		ProgramID:   req.ProgramID,
	}, nil
}

// GetAllCourses returns the full course catalog
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID returns a single course
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewNotFoundError("Course not found")
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// CreateCourse adds a course to the catalog under its owning program
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	course, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrCourseCodeExists):
			return nil, apperrors.NewConflictError("A course with this code already exists")
		case errors.Is(err, repositories.ErrProgramNotFound):
			return nil, apperrors.NewNotFoundError("Program not found")
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return created, nil
}

// UpdateCourse replaces a course's catalog fields
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error) {
	course, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}
	course.ID = id

	updated, err := s.courseRepo.Update(ctx, course)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrCourseNotFound):
			return nil, apperrors.NewNotFoundError("Course not found")
		case errors.Is(err, repositories.ErrCourseCodeExists):
			return nil, apperrors.NewConflictError("A course with this code already exists")
		case errors.Is(err, repositories.ErrProgramNotFound):
			return nil, apperrors.NewNotFoundError("Program not found")
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return updated, nil
}

// DeleteCourse removes a course from the catalog
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.NewNotFoundError("Course not found")
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
