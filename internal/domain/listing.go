package domain

import (
	"context"
	"errors"
)

// ErrUpstreamUnavailable signals that the external job site could not be
// reached or answered with a non-success status. It maps to 502 at the API
// boundary and is never retried automatically.
var ErrUpstreamUnavailable = errors.New("upstream job site unavailable")

// JobListing is a single posting scraped from the upstream site. Listings are
// request-scoped and never persisted (saving one creates a SavedJob instead).
type JobListing struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
}

// SearchQuery carries the scrape parameters built from a candidate's skills
// and the requested experience bracket.
type SearchQuery struct {
	Skills   []string
	Location string
	Level    ExperienceLevel
	MaxJobs  int
}

// ListingScraper isolates the markup-to-record extraction so the parsing
// strategy can change without touching the orchestrator or handlers.
type ListingScraper interface {
	Search(ctx context.Context, query SearchQuery) ([]JobListing, error)
}

// SearchJobsInput is the /search-jobs request body.
type SearchJobsInput struct {
	Skills          []string `json:"skills" validate:"required,min=1,dive,required"`
	Location        string   `json:"location"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	MaxJobs         int      `json:"max_jobs" validate:"gte=0"`
}

type SearchUsecase interface {
	FindJobs(ctx context.Context, input SearchJobsInput) ([]JobListing, error)
}
