package memory

import (
	"context"
	"sync"

	"job-finder-backend/internal/domain"
)

type savedJobRepo struct {
	mu sync.RWMutex
	// insertion order preserved so listings come back the way they were saved
	jobs []domain.SavedJob
}

func NewSavedJobRepository() domain.SavedJobRepository {
	return &savedJobRepo{}
}

func (r *savedJobRepo) GetByLink(_ context.Context, email, link string) (*domain.SavedJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.jobs {
		if r.jobs[i].Email == email && r.jobs[i].Link == link {
			job := r.jobs[i]
			return &job, nil
		}
	}
	return nil, nil
}

func (r *savedJobRepo) Create(_ context.Context, job *domain.SavedJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *savedJobRepo) ListByEmail(_ context.Context, email string) ([]domain.SavedJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var jobs []domain.SavedJob
	for i := range r.jobs {
		if r.jobs[i].Email == email {
			jobs = append(jobs, r.jobs[i])
		}
	}
	return jobs, nil
}

func (r *savedJobRepo) Delete(_ context.Context, email, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.jobs {
		if r.jobs[i].Email == email && r.jobs[i].ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
