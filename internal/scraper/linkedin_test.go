package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-finder-backend/internal/domain"
)

const searchPageFixture = `<!DOCTYPE html>
<html><body>
<ul>
<li><div class="base-card">
  <a class="base-card__full-link" href="https://jobs.example.com/1"></a>
  <h3 class="base-search-card__title"> Backend Engineer </h3>
  <h4 class="base-search-card__subtitle"> Acme Corp </h4>
  <span class="job-search-card__location"> Remote </span>
</div></li>
<li><div class="base-card">
  <a class="base-card__full-link" href="https://jobs.example.com/2"></a>
  <h3 class="base-search-card__title">Data Analyst</h3>
  <h4 class="base-search-card__subtitle">Globex</h4>
  <span class="job-search-card__location">Berlin</span>
</div></li>
<li><div class="base-card">
  <h3 class="base-search-card__title">Promo card without link</h3>
</div></li>
</ul>
</body></html>`

func TestSearchExtractsCards(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(searchPageFixture))
	}))
	defer srv.Close()

	s := NewLinkedIn(Config{BaseURL: srv.URL})
	listings, err := s.Search(context.Background(), domain.SearchQuery{
		Skills:   []string{"python", "sql", "docker", "kubernetes"},
		Location: "Remote",
		Level:    domain.LevelMid,
	})
	require.NoError(t, err)

	require.Len(t, listings, 2)
	assert.Equal(t, domain.JobListing{
		Title:    "Backend Engineer",
		Company:  "Acme Corp",
		Location: "Remote",
		Link:     "https://jobs.example.com/1",
	}, listings[0])
	assert.Equal(t, "Data Analyst", listings[1].Title)

	// Only the top three skills make it into the keyword query, and the
	// experience facet rides along.
	assert.Contains(t, gotQuery, "keywords=python+sql+docker")
	assert.NotContains(t, gotQuery, "kubernetes")
	assert.Contains(t, gotQuery, "f_E=3%2C4")
	assert.Contains(t, gotQuery, "location=Remote")
}

func TestSearchRespectsMaxJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(searchPageFixture))
	}))
	defer srv.Close()

	s := NewLinkedIn(Config{BaseURL: srv.URL})
	listings, err := s.Search(context.Background(), domain.SearchQuery{
		Skills:  []string{"python"},
		MaxJobs: 1,
	})
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestSearchEmptyPageIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><p>no results</p></body></html>"))
	}))
	defer srv.Close()

	s := NewLinkedIn(Config{BaseURL: srv.URL})
	listings, err := s.Search(context.Background(), domain.SearchQuery{Skills: []string{"cobol"}})
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestSearchUpstreamFailures(t *testing.T) {
	t.Run("Should wrap non-success status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		s := NewLinkedIn(Config{BaseURL: srv.URL})
		_, err := s.Search(context.Background(), domain.SearchQuery{Skills: []string{"python"}})
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("Should wrap timeouts without partial results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		s := NewLinkedIn(Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
		listings, err := s.Search(context.Background(), domain.SearchQuery{Skills: []string{"python"}})
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		assert.Nil(t, listings)
	})

	t.Run("Should fail when the host is unreachable", func(t *testing.T) {
		s := NewLinkedIn(Config{BaseURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
		_, err := s.Search(context.Background(), domain.SearchQuery{Skills: []string{"python"}})
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})
}
