package domain

import (
	"context"
	"time"
)

// Saved job application statuses.
const (
	SavedJobPending      = "pending"
	SavedJobApplied      = "applied"
	SavedJobInterviewing = "interviewing"
	SavedJobRejected     = "rejected"
	SavedJobAccepted     = "accepted"
)

type SavedJob struct {
	ID       string    `json:"id"`
	Email    string    `json:"email" validate:"required,email"`
	Title    string    `json:"title" validate:"required"`
	Company  string    `json:"company" validate:"required"`
	Location string    `json:"location"`
	Link     string    `json:"link" validate:"required,url"`
	HREmail  string    `json:"hr_email,omitempty" validate:"omitempty,email"`
	Status   string    `json:"status"`
	SavedAt  time.Time `json:"saved_at"`
}

// DashboardStats buckets a user's saved jobs by how far along they are.
type DashboardStats struct {
	TotalApplications int `json:"totalApplications"`
	Ended             int `json:"ended"`
	Running           int `json:"running"`
	Pending           int `json:"pending"`
}

type SavedJobRepository interface {
	GetByLink(ctx context.Context, email, link string) (*SavedJob, error)
	Create(ctx context.Context, job *SavedJob) error
	ListByEmail(ctx context.Context, email string) ([]SavedJob, error)
	Delete(ctx context.Context, email, id string) (bool, error)
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, job *SavedJob) (*SavedJob, bool, error)
	ListSavedJobs(ctx context.Context, email string) ([]SavedJob, error)
	DeleteSavedJob(ctx context.Context, email, id string) error
	DashboardStats(ctx context.Context, email string) (*DashboardStats, error)
}
