package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/app/repositories"
	"github.com/acadio/backend/internal/config"
	"github.com/acadio/backend/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account and a small sample
// catalog. Every step checks before inserting, so repeated startups are safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	programRepo := repositories.NewProgramRepository(dbPool)
	courseRepo := repositories.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := createAdminUser(ctx, userRepo, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if cfg.Seed.SampleCatalog {
		if err := createSampleCatalog(ctx, programRepo, courseRepo, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func createAdminUser(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	username := cfg.Seed.AdminUsername
	if username == "" {
		username = "admin"
	}

	exists, err := userRepo.UsernameExists(ctx, username)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		return nil
	}

	password := cfg.Seed.AdminPassword
	if password == "" {
		lgr.Warn().Msg("No seed admin password configured, skipping admin creation")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		FirstName: "System",
		LastName:  "Admin",
		Email:     "admin@acadio.app",
		Username:  username,
		Password:  hashed,
		Role:      models.RoleAdmin,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Str("username", username).Msg("Default admin user created")
	return nil
}

func createSampleCatalog(ctx context.Context, programRepo *repositories.ProgramRepository, courseRepo *repositories.CourseRepository, lgr zerolog.Logger) error {
	existing, err := programRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing programs")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	termStart := time.Date(time.Now().Year(), time.September, 1, 0, 0, 0, 0, time.UTC)
	termEnd := termStart.AddDate(0, 9, 0)

	var finalErr error
	samplePrograms := []struct {
		program *models.Program
		courses []*models.Course
	}{
		{
			program: &models.Program{
				ProgramCode: "CS",
				Name:        "Computer Science",
				Description: "Foundations of computing, algorithms and software systems",
				Term:        "Fall",
				StartDate:   termStart,
				EndDate:     termEnd,
				Fees:        4200,
			},
			courses: []*models.Course{
				{CourseCode: "CS101", Name: "Introduction to Programming", Description: "First steps in programming", Term: "Fall", StartDate: termStart, EndDate: termEnd},
				{CourseCode: "CS201", Name: "Data Structures", Description: "Core data structures and their trade-offs", Term: "Fall", StartDate: termStart, EndDate: termEnd},
			},
		},
		{
			program: &models.Program{
				ProgramCode: "BA",
				Name:        "Business Administration",
				Description: "Management, finance and organizational behavior",
				Term:        "Fall",
				StartDate:   termStart,
				EndDate:     termEnd,
				Fees:        3800,
			},
			courses: []*models.Course{
				{CourseCode: "BA101", Name: "Principles of Management", Description: "Introduction to managing organizations", Term: "Fall", StartDate: termStart, EndDate: termEnd},
			},
		},
	}

	for _, entry := range samplePrograms {
		created, err := programRepo.Create(ctx, entry.program)
		if err != nil {
			lgr.Error().Err(err).Str("programCode", entry.program.ProgramCode).Msg("Error creating sample program")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		for _, course := range entry.courses {
			course.ProgramID = created.ID
			if _, err := courseRepo.Create(ctx, course); err != nil {
				lgr.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error creating sample course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Sample catalog created")
	}
	return finalErr
}
