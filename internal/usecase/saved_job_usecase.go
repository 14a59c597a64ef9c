package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

type savedJobUsecase struct {
	repo     domain.SavedJobRepository
	validate *validator.Validate
}

func NewSavedJobUsecase(repo domain.SavedJobRepository, validate *validator.Validate) domain.SavedJobUsecase {
	return &savedJobUsecase{
		repo:     repo,
		validate: validate,
	}
}

// SaveJob bookmarks a listing. Saving the same link twice for the same email
// is a no-op that returns the existing record; the bool reports whether a new
// record was created.
func (u *savedJobUsecase) SaveJob(ctx context.Context, job *domain.SavedJob) (*domain.SavedJob, bool, error) {
	if err := u.validate.Struct(job); err != nil {
		return nil, false, apperror.BadRequest("Invalid saved job: email, title, company and a valid link are required")
	}

	existing, err := u.repo.GetByLink(ctx, job.Email, job.Link)
	if err != nil {
		return nil, false, apperror.Internal(err)
	}
	if existing != nil {
		return existing, false, nil
	}

	job.ID = uuid.NewString()
	if job.Status == "" {
		job.Status = domain.SavedJobPending
	}
	job.SavedAt = time.Now().UTC()

	if err := u.repo.Create(ctx, job); err != nil {
		return nil, false, apperror.Internal(err)
	}
	return job, true, nil
}

func (u *savedJobUsecase) ListSavedJobs(ctx context.Context, email string) ([]domain.SavedJob, error) {
	if err := u.validate.Var(email, "required,email"); err != nil {
		return nil, apperror.BadRequest("Invalid email format")
	}
	jobs, err := u.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *savedJobUsecase) DeleteSavedJob(ctx context.Context, email, id string) error {
	if err := u.validate.Var(email, "required,email"); err != nil {
		return apperror.BadRequest("Invalid email format")
	}
	deleted, err := u.repo.Delete(ctx, email, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("Saved job not found")
	}
	return nil
}

// DashboardStats buckets saved jobs the way the dashboard displays them:
// ended (rejected/accepted), running (applied/interviewing), pending (rest).
func (u *savedJobUsecase) DashboardStats(ctx context.Context, email string) (*domain.DashboardStats, error) {
	jobs, err := u.ListSavedJobs(ctx, email)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{TotalApplications: len(jobs)}
	for _, job := range jobs {
		switch job.Status {
		case domain.SavedJobRejected, domain.SavedJobAccepted:
			stats.Ended++
		case domain.SavedJobApplied, domain.SavedJobInterviewing:
			stats.Running++
		default:
			stats.Pending++
		}
	}
	return stats, nil
}
