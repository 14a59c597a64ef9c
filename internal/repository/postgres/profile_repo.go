package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"job-finder-backend/internal/domain"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	query := `SELECT email, name, phone, skills, updated_at FROM candidate_profiles WHERE email = $1`

	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, email).Scan(
		&p.Email, &p.Name, &p.Phone, pq.Array(&p.Skills), &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles (email, name, phone, skills, updated_at)
              VALUES ($1, $2, $3, $4, $5)
              ON CONFLICT (email) DO UPDATE
              SET name = EXCLUDED.name, phone = EXCLUDED.phone, skills = EXCLUDED.skills, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query,
		profile.Email, profile.Name, profile.Phone, pq.Array(profile.Skills), profile.UpdatedAt,
	)
	return err
}
