package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

type experienceUsecase struct {
	repo     domain.ExperienceRepository
	validate *validator.Validate
}

func NewExperienceUsecase(repo domain.ExperienceRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{
		repo:     repo,
		validate: validate,
	}
}

// AddExperience upserts the years of experience for an email and returns the
// record with its derived level. Validation happens before any store access,
// so invalid input never mutates state. The level is computed on the way out
// and never persisted.
func (u *experienceUsecase) AddExperience(ctx context.Context, email string, years int) (*domain.ExperienceRecord, error) {
	if err := u.validate.Var(email, "required,email"); err != nil {
		return nil, apperror.BadRequest("Invalid email format")
	}
	if years < 0 {
		return nil, apperror.BadRequest("Experience years must be a non-negative integer")
	}

	exp := &domain.Experience{
		Email:     email,
		Years:     years,
		UpdatedAt: time.Now().UTC(),
	}
	if err := u.repo.Upsert(ctx, exp); err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ExperienceRecord{
		Email: exp.Email,
		Years: exp.Years,
		Level: domain.LevelForYears(exp.Years),
	}, nil
}
