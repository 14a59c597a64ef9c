package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-finder-backend/internal/domain"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) GetByEmail(ctx context.Context, email string) (*domain.Experience, error) {
	query := `SELECT email, years, updated_at FROM experiences WHERE email = $1`

	var exp domain.Experience
	err := r.db.QueryRow(ctx, query, email).Scan(&exp.Email, &exp.Years, &exp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

// Upsert stores years only; the level is derived at read time so the two can
// never disagree.
func (r *experienceRepo) Upsert(ctx context.Context, exp *domain.Experience) error {
	query := `INSERT INTO experiences (email, years, updated_at)
              VALUES ($1, $2, $3)
              ON CONFLICT (email) DO UPDATE
              SET years = EXCLUDED.years, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, exp.Email, exp.Years, exp.UpdatedAt)
	return err
}
