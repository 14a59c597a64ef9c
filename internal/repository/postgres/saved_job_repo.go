package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-finder-backend/internal/domain"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

func (r *savedJobRepo) GetByLink(ctx context.Context, email, link string) (*domain.SavedJob, error) {
	query := `SELECT id, email, title, company, location, link, hr_email, status, saved_at
              FROM saved_jobs WHERE email = $1 AND link = $2`

	var job domain.SavedJob
	err := r.db.QueryRow(ctx, query, email, link).Scan(
		&job.ID, &job.Email, &job.Title, &job.Company, &job.Location,
		&job.Link, &job.HREmail, &job.Status, &job.SavedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *savedJobRepo) Create(ctx context.Context, job *domain.SavedJob) error {
	query := `INSERT INTO saved_jobs (id, email, title, company, location, link, hr_email, status, saved_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Email, job.Title, job.Company, job.Location,
		job.Link, job.HREmail, job.Status, job.SavedAt,
	)
	return err
}

func (r *savedJobRepo) ListByEmail(ctx context.Context, email string) ([]domain.SavedJob, error) {
	query := `SELECT id, email, title, company, location, link, hr_email, status, saved_at
              FROM saved_jobs WHERE email = $1 ORDER BY saved_at ASC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.SavedJob
	for rows.Next() {
		var job domain.SavedJob
		if err := rows.Scan(
			&job.ID, &job.Email, &job.Title, &job.Company, &job.Location,
			&job.Link, &job.HREmail, &job.Status, &job.SavedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *savedJobRepo) Delete(ctx context.Context, email, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE email = $1 AND id = $2`, email, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
