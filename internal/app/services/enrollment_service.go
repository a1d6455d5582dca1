package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/app/repositories"
	"github.com/acadio/backend/internal/pkg/apperrors"
)

// EnrollmentService enforces the program and course enrollment rules:
// one program per user, course enrollment only under the enrolled program,
// and cascade removal of course enrollments when the program goes.
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// SubscribeProgram enrolls the user in the program and returns the program record
func (s *EnrollmentService) SubscribeProgram(ctx context.Context, userID, programID int64) (*models.Program, error) {
	program, err := s.enrollmentRepo.SubscribeProgram(ctx, userID, programID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAlreadySubscribedToProgram):
			return nil, apperrors.NewConflictError("You are already subscribed to a program. Unsubscribe first.")
		case errors.Is(err, repositories.ErrProgramNotFound):
			return nil, apperrors.NewNotFoundError("Program not found")
		}
		return nil, fmt.Errorf("error subscribing to program: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Int64("programID", programID).Msg("User subscribed to program")

	return program, nil
}

// UnsubscribeProgram removes the user's program enrollment together with all
// of their course enrollments under that program
func (s *EnrollmentService) UnsubscribeProgram(ctx context.Context, userID, programID int64) error {
	err := s.enrollmentRepo.UnsubscribeProgram(ctx, userID, programID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotSubscribedToProgram) {
			return apperrors.NewNotFoundError("You are not subscribed to this program")
		}
		return fmt.Errorf("error unsubscribing from program: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Int64("programID", programID).Msg("User unsubscribed from program")

	return nil
}

// GetMyProgram returns the user's enrolled program, or nil when the user
// has none. Having no program is a normal state, not an error.
func (s *EnrollmentService) GetMyProgram(ctx context.Context, userID int64) (*models.Program, error) {
	program, err := s.enrollmentRepo.GetProgramByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting user program: %w", err)
	}
	return program, nil
}

// SubscribeCourse enrolls the user in a course under their enrolled program
func (s *EnrollmentService) SubscribeCourse(ctx context.Context, userID, courseID int64) error {
	err := s.enrollmentRepo.SubscribeCourse(ctx, userID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrCourseNotFound):
			return apperrors.NewNotFoundError("Course not found")
		case errors.Is(err, repositories.ErrProgramMembershipRequired):
			return apperrors.NewPreconditionError("You must be subscribed to the program to enroll in this course")
		case errors.Is(err, repositories.ErrAlreadySubscribedToCourse):
			return apperrors.NewConflictError("Already subscribed to this course")
		}
		return fmt.Errorf("error subscribing to course: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Int64("courseID", courseID).Msg("User subscribed to course")

	return nil
}

// UnsubscribeCourse removes the user's enrollment in a single course
func (s *EnrollmentService) UnsubscribeCourse(ctx context.Context, userID, courseID int64) error {
	err := s.enrollmentRepo.UnsubscribeCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotSubscribedToCourse) {
			return apperrors.NewNotFoundError("You are not subscribed to this course")
		}
		return fmt.Errorf("error unsubscribing from course: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Int64("courseID", courseID).Msg("User unsubscribed from course")

	return nil
}

// GetMyCourses returns the courses the user is enrolled in. An empty list
// is a normal state, not an error.
func (s *EnrollmentService) GetMyCourses(ctx context.Context, userID int64) ([]*models.Course, error) {
	courses, err := s.enrollmentRepo.GetCoursesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting user courses: %w", err)
	}
	return courses, nil
}
