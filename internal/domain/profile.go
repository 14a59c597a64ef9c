package domain

import (
	"context"
	"errors"
	"time"
)

// ErrUnparseableDocument is returned when an uploaded byte stream is not a
// readable PDF. A missing field (email, phone, skills) is never an error;
// extraction is best-effort and partial profiles are valid.
var ErrUnparseableDocument = errors.New("document is not a parseable PDF")

type CandidateProfile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Skills    []string  `json:"skills"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (*CandidateProfile, error)
	Upsert(ctx context.Context, profile *CandidateProfile) error
}

// ResumeExtractor turns raw PDF bytes into a best-effort profile.
type ResumeExtractor interface {
	Extract(pdfBytes []byte) (*CandidateProfile, error)
}

type ResumeUsecase interface {
	UploadResume(ctx context.Context, filename string, data []byte) (*CandidateProfile, error)
	GetProfile(ctx context.Context, email string) (*CandidateProfile, error)
}
