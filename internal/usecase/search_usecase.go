package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

type searchUsecase struct {
	scraper  domain.ListingScraper
	validate *validator.Validate
}

func NewSearchUsecase(scraper domain.ListingScraper, validate *validator.Validate) domain.SearchUsecase {
	return &searchUsecase{
		scraper:  scraper,
		validate: validate,
	}
}

// FindJobs scrapes the upstream site and applies a stable subset filter: the
// output is always a subsequence of what the scraper returned, in the same
// relative order. An empty result after filtering is success, not an error.
func (u *searchUsecase) FindJobs(ctx context.Context, input domain.SearchJobsInput) ([]domain.JobListing, error) {
	if err := u.validate.Struct(&input); err != nil {
		return nil, apperror.BadRequest("Invalid search filters: skills must be non-empty and experience_years non-negative")
	}

	level := domain.LevelForYears(input.ExperienceYears)
	listings, err := u.scraper.Search(ctx, domain.SearchQuery{
		Skills:   input.Skills,
		Location: input.Location,
		Level:    level,
		MaxJobs:  input.MaxJobs,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return nil, apperror.BadGateway("Job site is unavailable, please try again later", err)
		}
		return nil, apperror.Internal(err)
	}

	return filterListings(listings, input.Skills, level), nil
}

// filterListings retains a listing when (a) at least one requested skill
// appears in its title or company line, case-insensitively, and (b) its title
// does not signal a seniority above the requested level.
//
// Level policy: only a signal ABOVE the requested bracket rejects a listing.
// A mid-level candidate can still apply to a junior posting, so signals at or
// below the bracket are kept, and a title with no level signal is never
// rejected on level grounds.
func filterListings(listings []domain.JobListing, skills []string, level domain.ExperienceLevel) []domain.JobListing {
	retained := make([]domain.JobListing, 0, len(listings))
	for _, listing := range listings {
		if !matchesSkill(listing, skills) {
			continue
		}
		if signal, ok := levelSignal(listing.Title); ok && signal.Rank() > level.Rank() {
			continue
		}
		retained = append(retained, listing)
	}
	return retained
}

func matchesSkill(listing domain.JobListing, skills []string) bool {
	haystack := strings.ToLower(listing.Title + " " + listing.Company)
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" && strings.Contains(haystack, skill) {
			return true
		}
	}
	return false
}

// Ordered most senior first; the first matching term wins, so a title like
// "Senior Trainee Program Lead" reads as senior.
var levelSignals = []struct {
	level domain.ExperienceLevel
	terms []string
}{
	{domain.LevelSenior, []string{"senior", "sr.", "staff", "principal", "lead", "head of", "director"}},
	{domain.LevelMid, []string{"mid-level", "mid level", "intermediate"}},
	{domain.LevelEntry, []string{"junior", "jr.", "entry level", "entry-level", "graduate", "trainee"}},
	{domain.LevelFresher, []string{"intern", "fresher"}},
}

func levelSignal(title string) (domain.ExperienceLevel, bool) {
	lower := strings.ToLower(title)
	for _, signal := range levelSignals {
		for _, term := range signal.terms {
			if strings.Contains(lower, term) {
				return signal.level, true
			}
		}
	}
	return "", false
}
