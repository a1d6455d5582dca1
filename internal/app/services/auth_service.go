package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/app/models/dto"
	"github.com/acadio/backend/internal/app/repositories"
	"github.com/acadio/backend/internal/pkg/apperrors"
	"github.com/acadio/backend/internal/pkg/auth"
	"github.com/acadio/backend/internal/pkg/helpers"
	"github.com/acadio/backend/internal/pkg/validation"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Signup registers a new student account
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	usernameOK := validation.NewStringValidation(req.Username).
		WithMinLength(3).
		WithMaxLength(30).
		WithPattern(validation.CompiledPatterns.Username).
		Validate()
	if !usernameOK {
		return nil, apperrors.NewValidationError("Username may only contain letters, digits, dots and underscores")
	}

	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrUsernameTaken, "Username is already taken")
	}

	exists, err = s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email is already registered")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var birthday *time.Time
	if req.Birthday != "" {
		parsed, err := helpers.ParseDate(req.Birthday)
		if err != nil {
			return nil, apperrors.NewValidationError("Birthday must be a valid date in YYYY-MM-DD form")
		}
		birthday = &parsed
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Birthday:  birthday,
		Username:  req.Username,
		Password:  hashed,
		Role:      models.RoleStudent,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	user.ID = id

	s.logger.Info().Int64("userID", id).Str("username", user.Username).Msg("New student registered")

	return user, nil
}

// Login checks credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid username or password")
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid username or password")
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Role:     string(user.Role),
		},
	}, nil
}
