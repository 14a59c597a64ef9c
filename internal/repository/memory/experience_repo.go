package memory

import (
	"context"
	"sync"

	"job-finder-backend/internal/domain"
)

type experienceRepo struct {
	mu      sync.RWMutex
	records map[string]domain.Experience
}

func NewExperienceRepository() domain.ExperienceRepository {
	return &experienceRepo{records: make(map[string]domain.Experience)}
}

func (r *experienceRepo) GetByEmail(_ context.Context, email string) (*domain.Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exp, ok := r.records[email]
	if !ok {
		return nil, nil
	}
	return &exp, nil
}

func (r *experienceRepo) Upsert(_ context.Context, exp *domain.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[exp.Email] = *exp
	return nil
}
