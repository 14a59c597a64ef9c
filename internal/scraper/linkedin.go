// Package scraper retrieves job listings from the LinkedIn public search page.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"job-finder-backend/internal/domain"
)

// Browser-like UA; the public search page serves a stripped response to
// unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

const defaultTimeout = 15 * time.Second

// Listing card selectors on the public search page. They change when the
// upstream markup does; keeping them in one place is the whole point of
// this package.
const (
	selectorCard     = "div.base-card"
	selectorTitle    = "h3.base-search-card__title"
	selectorCompany  = "h4.base-search-card__subtitle"
	selectorLocation = "span.job-search-card__location"
	selectorLink     = "a.base-card__full-link"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	MaxJobs int
}

type LinkedIn struct {
	client  *http.Client
	baseURL string
	maxJobs int
}

func NewLinkedIn(cfg Config) *LinkedIn {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.linkedin.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxJobs <= 0 {
		cfg.MaxJobs = 50
	}
	return &LinkedIn{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		maxJobs: cfg.MaxJobs,
	}
}

// Search fetches one results page and extracts its listing cards in page
// order. An empty result is a valid outcome; only transport failures and
// non-success statuses are errors.
func (s *LinkedIn) Search(ctx context.Context, query domain.SearchQuery) ([]domain.JobListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.searchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	limit := s.maxJobs
	if query.MaxJobs > 0 && query.MaxJobs < limit {
		limit = query.MaxJobs
	}
	return extractListings(doc, limit), nil
}

func (s *LinkedIn) searchURL(query domain.SearchQuery) string {
	// The top three skills form the keyword query, matching how candidates
	// search by hand; more terms make the upstream search return nothing.
	skills := query.Skills
	if len(skills) > 3 {
		skills = skills[:3]
	}

	params := url.Values{}
	params.Set("keywords", strings.Join(skills, " "))
	if query.Location != "" {
		params.Set("location", query.Location)
	}
	if facet := experienceFacet(query.Level); facet != "" {
		params.Set("f_E", facet)
	}

	return s.baseURL + "/jobs/search/?" + params.Encode()
}

// experienceFacet maps a level bracket to the upstream f_E experience facet.
func experienceFacet(level domain.ExperienceLevel) string {
	switch level {
	case domain.LevelFresher:
		return "1"
	case domain.LevelEntry:
		return "1,2"
	case domain.LevelMid:
		return "3,4"
	case domain.LevelSenior:
		return "5,6"
	}
	return ""
}

// extractListings walks the listing cards and pulls out the four fields the
// rest of the system cares about. Cards missing a title or link are skipped;
// the upstream page routinely pads results with promo cards.
func extractListings(doc *goquery.Document, limit int) []domain.JobListing {
	var listings []domain.JobListing
	doc.Find(selectorCard).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(listings) >= limit {
			return false
		}

		title := strings.TrimSpace(card.Find(selectorTitle).First().Text())
		link, _ := card.Find(selectorLink).First().Attr("href")
		if title == "" || link == "" {
			return true
		}

		listings = append(listings, domain.JobListing{
			Title:    title,
			Company:  strings.TrimSpace(card.Find(selectorCompany).First().Text()),
			Location: strings.TrimSpace(card.Find(selectorLocation).First().Text()),
			Link:     link,
		})
		return true
	})
	return listings
}
