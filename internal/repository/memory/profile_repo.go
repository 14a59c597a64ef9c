// Package memory provides process-lifetime stores used when DATABASE_URL is
// not configured. Writes to the same key are serialized behind a mutex so
// concurrent requests cannot lose updates.
package memory

import (
	"context"
	"sync"

	"job-finder-backend/internal/domain"
)

type profileRepo struct {
	mu       sync.RWMutex
	profiles map[string]domain.CandidateProfile
}

func NewProfileRepository() domain.ProfileRepository {
	return &profileRepo{profiles: make(map[string]domain.CandidateProfile)}
}

func (r *profileRepo) GetByEmail(_ context.Context, email string) (*domain.CandidateProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[email]
	if !ok {
		return nil, nil
	}
	// Copy out so callers can't mutate the stored value.
	clone := profile
	clone.Skills = append([]string(nil), profile.Skills...)
	return &clone, nil
}

func (r *profileRepo) Upsert(_ context.Context, profile *domain.CandidateProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *profile
	clone.Skills = append([]string(nil), profile.Skills...)
	r.profiles[profile.Email] = clone
	return nil
}
