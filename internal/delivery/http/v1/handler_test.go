package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"job-finder-backend/internal/delivery/http/middleware"
	v1 "job-finder-backend/internal/delivery/http/v1"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/logger"
)

// Mock Usecases

type MockResumeUC struct {
	mock.Mock
}

func (m *MockResumeUC) UploadResume(ctx context.Context, filename string, data []byte) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockResumeUC) GetProfile(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

type MockExperienceUC struct {
	mock.Mock
}

func (m *MockExperienceUC) AddExperience(ctx context.Context, email string, years int) (*domain.ExperienceRecord, error) {
	args := m.Called(ctx, email, years)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExperienceRecord), args.Error(1)
}

type MockSearchUC struct {
	mock.Mock
}

func (m *MockSearchUC) FindJobs(ctx context.Context, input domain.SearchJobsInput) ([]domain.JobListing, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobListing), args.Error(1)
}

type MockSavedJobUC struct {
	mock.Mock
}

func (m *MockSavedJobUC) SaveJob(ctx context.Context, job *domain.SavedJob) (*domain.SavedJob, bool, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.SavedJob), args.Bool(1), args.Error(2)
}

func (m *MockSavedJobUC) ListSavedJobs(ctx context.Context, email string) ([]domain.SavedJob, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedJob), args.Error(1)
}

func (m *MockSavedJobUC) DeleteSavedJob(ctx context.Context, email, id string) error {
	return m.Called(ctx, email, id).Error(0)
}

func (m *MockSavedJobUC) DashboardStats(ctx context.Context, email string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func noopLimiter(c *gin.Context) {
	c.Next()
}

func newTestRouter(register func(r *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	register(r.Group("/v1"))
	return r
}

func decodeResponse(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &payload))
	return payload
}

func TestUploadResumeEndpoint(t *testing.T) {
	t.Run("Should return 400 when no file is attached", func(t *testing.T) {
		mockUC := new(MockResumeUC)
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewResumeHandler(g, noopLimiter, mockUC)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/upload-resume", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "UploadResume")
	})

	t.Run("Should surface usecase rejection of a non-PDF upload", func(t *testing.T) {
		mockUC := new(MockResumeUC)
		mockUC.On("UploadResume", mock.Anything, "resume.txt", mock.Anything).
			Return(nil, apperror.BadRequest("resume must be a PDF file"))
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewResumeHandler(g, noopLimiter, mockUC)
		})

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("file", "resume.txt")
		require.NoError(t, err)
		_, err = part.Write([]byte("not a pdf"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/upload-resume", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		payload := decodeResponse(t, w.Body)
		assert.Equal(t, false, payload["success"])
	})

	t.Run("Should return the parsed profile", func(t *testing.T) {
		mockUC := new(MockResumeUC)
		mockUC.On("UploadResume", mock.Anything, "resume.pdf", mock.Anything).
			Return(&domain.CandidateProfile{Name: "Jane Doe", Email: "jane@example.com"}, nil)
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewResumeHandler(g, noopLimiter, mockUC)
		})

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("file", "resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 body"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/upload-resume", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		payload := decodeResponse(t, w.Body)
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, "jane@example.com", data["email"])
	})
}

func TestAddExperienceEndpoint(t *testing.T) {
	t.Run("Should return the derived level", func(t *testing.T) {
		mockUC := new(MockExperienceUC)
		mockUC.On("AddExperience", mock.Anything, "dev@example.com", 4).
			Return(&domain.ExperienceRecord{Email: "dev@example.com", Years: 4, Level: domain.LevelMid}, nil)
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewExperienceHandler(g, mockUC)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/add-experience",
			strings.NewReader(`{"email":"dev@example.com","years":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		payload := decodeResponse(t, w.Body)
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, string(domain.LevelMid), data["level"])
	})

	t.Run("Should return 400 when years is missing", func(t *testing.T) {
		mockUC := new(MockExperienceUC)
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewExperienceHandler(g, mockUC)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/add-experience",
			strings.NewReader(`{"email":"dev@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "AddExperience")
	})

	t.Run("Should return 400 from usecase validation", func(t *testing.T) {
		mockUC := new(MockExperienceUC)
		mockUC.On("AddExperience", mock.Anything, "bad-email", 4).
			Return(nil, apperror.BadRequest("Invalid email format"))
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewExperienceHandler(g, mockUC)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/add-experience",
			strings.NewReader(`{"email":"bad-email","years":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		payload := decodeResponse(t, w.Body)
		assert.Equal(t, "Invalid email format", payload["message"])
	})
}

func TestSearchJobsEndpoint(t *testing.T) {
	t.Run("Should return filtered listings", func(t *testing.T) {
		mockUC := new(MockSearchUC)
		mockUC.On("FindJobs", mock.Anything, mock.Anything).Return([]domain.JobListing{
			{Title: "Junior Analyst, SQL", Company: "DataCo", Location: "Berlin", Link: "https://jobs.example.com/2"},
		}, nil)
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewJobHandler(g, noopLimiter, mockUC)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/search-jobs",
			strings.NewReader(`{"skills":["python","sql"],"location":"Berlin","experience_years":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		payload := decodeResponse(t, w.Body)
		data := payload["data"].([]interface{})
		require.Len(t, data, 1)
	})

	t.Run("Should return 400 on malformed JSON", func(t *testing.T) {
		mockUC := new(MockSearchUC)
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewJobHandler(g, noopLimiter, mockUC)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/search-jobs", strings.NewReader(`{"skills":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "FindJobs")
	})

	t.Run("Should return 502 when the upstream site is down", func(t *testing.T) {
		mockUC := new(MockSearchUC)
		mockUC.On("FindJobs", mock.Anything, mock.Anything).
			Return(nil, apperror.BadGateway("Job site is unavailable, please try again later", domain.ErrUpstreamUnavailable))
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewJobHandler(g, noopLimiter, mockUC)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/search-jobs",
			strings.NewReader(`{"skills":["python"],"experience_years":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		payload := decodeResponse(t, w.Body)
		assert.Equal(t, "Job site is unavailable, please try again later", payload["message"])
	})
}

func TestSavedJobsEndpoints(t *testing.T) {
	t.Run("Should return 201 for a new bookmark and 200 for a duplicate", func(t *testing.T) {
		saved := &domain.SavedJob{ID: "abc", Email: "dev@example.com", Title: "Backend Engineer",
			Company: "Acme", Link: "https://jobs.example.com/42", Status: domain.SavedJobPending}

		mockUC := new(MockSavedJobUC)
		mockUC.On("SaveJob", mock.Anything, mock.Anything).Return(saved, true, nil).Once()
		mockUC.On("SaveJob", mock.Anything, mock.Anything).Return(saved, false, nil).Once()
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewSavedJobHandler(g, mockUC)
		})

		body := `{"email":"dev@example.com","title":"Backend Engineer","company":"Acme","link":"https://jobs.example.com/42"}`

		req := httptest.NewRequest(http.MethodPost, "/v1/saved-jobs", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		req = httptest.NewRequest(http.MethodPost, "/v1/saved-jobs", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should return 404 when deleting an unknown saved job", func(t *testing.T) {
		mockUC := new(MockSavedJobUC)
		mockUC.On("DeleteSavedJob", mock.Anything, "dev@example.com", "missing").
			Return(apperror.NotFound("Saved job not found"))
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewSavedJobHandler(g, mockUC)
		})

		req := httptest.NewRequest(http.MethodDelete, "/v1/saved-jobs/missing?email=dev@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Should return dashboard stats", func(t *testing.T) {
		mockUC := new(MockSavedJobUC)
		mockUC.On("DashboardStats", mock.Anything, "dev@example.com").
			Return(&domain.DashboardStats{TotalApplications: 3, Ended: 1, Running: 1, Pending: 1}, nil)
		router := newTestRouter(func(g *gin.RouterGroup) {
			v1.NewSavedJobHandler(g, mockUC)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/stats/dashboard?email=dev@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		payload := decodeResponse(t, w.Body)
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, float64(3), data["totalApplications"])
	})
}
