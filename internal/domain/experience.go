package domain

import (
	"context"
	"time"
)

// ExperienceLevel is derived from years of experience and never stored,
// so the two can't drift apart.
type ExperienceLevel string

const (
	LevelFresher ExperienceLevel = "Fresher"
	LevelEntry   ExperienceLevel = "Entry"
	LevelMid     ExperienceLevel = "Mid"
	LevelSenior  ExperienceLevel = "Senior"
)

// LevelForYears maps years of experience to a level bracket:
// 0 -> Fresher, 1-2 -> Entry, 3-5 -> Mid, 6+ -> Senior.
// Negative input is the caller's validation failure; it maps to Fresher.
func LevelForYears(years int) ExperienceLevel {
	switch {
	case years <= 0:
		return LevelFresher
	case years <= 2:
		return LevelEntry
	case years <= 5:
		return LevelMid
	default:
		return LevelSenior
	}
}

// Rank orders levels for seniority comparisons.
func (l ExperienceLevel) Rank() int {
	switch l {
	case LevelFresher:
		return 0
	case LevelEntry:
		return 1
	case LevelMid:
		return 2
	case LevelSenior:
		return 3
	}
	return -1
}

type Experience struct {
	Email     string    `json:"email" validate:"required,email"`
	Years     int       `json:"years" validate:"gte=0"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExperienceRecord is the API shape: the stored record plus its derived level.
type ExperienceRecord struct {
	Email string          `json:"email"`
	Years int             `json:"years"`
	Level ExperienceLevel `json:"level"`
}

type ExperienceRepository interface {
	GetByEmail(ctx context.Context, email string) (*Experience, error)
	Upsert(ctx context.Context, exp *Experience) error
}

type ExperienceUsecase interface {
	AddExperience(ctx context.Context, email string, years int) (*ExperienceRecord, error)
}
