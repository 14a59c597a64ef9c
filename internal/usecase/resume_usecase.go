package usecase

import (
	"context"
	"errors"
	"time"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/security"
)

type resumeUsecase struct {
	repo      domain.ProfileRepository
	extractor domain.ResumeExtractor
}

func NewResumeUsecase(repo domain.ProfileRepository, extractor domain.ResumeExtractor) domain.ResumeUsecase {
	return &resumeUsecase{
		repo:      repo,
		extractor: extractor,
	}
}

// UploadResume validates the upload, extracts a best-effort profile and stores
// it keyed by the extracted email. The bytes themselves are never written
// anywhere; the parsed profile is the only thing that survives the request.
func (u *resumeUsecase) UploadResume(ctx context.Context, filename string, data []byte) (*domain.CandidateProfile, error) {
	if err := security.ValidateResumeUpload(filename, data); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	profile, err := u.extractor.Extract(data)
	if err != nil {
		if errors.Is(err, domain.ErrUnparseableDocument) {
			return nil, apperror.BadRequest("Uploaded file is not a parseable PDF")
		}
		return nil, apperror.Internal(err)
	}

	profile.UpdatedAt = time.Now().UTC()

	// A profile without an email has no key; return it to the caller but skip
	// the store rather than failing the whole request.
	if profile.Email != "" {
		if err := u.repo.Upsert(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	return profile, nil
}

func (u *resumeUsecase) GetProfile(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	profile, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("No resume on file for this email")
	}
	return profile, nil
}
