package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"job-finder-backend/config"
	"job-finder-backend/internal/delivery/http/middleware"
	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
)

type RouterDeps struct {
	ResumeUC     domain.ResumeUsecase
	ExperienceUC domain.ExperienceUsecase
	SearchUC     domain.SearchUsecase
	SavedJobUC   domain.SavedJobUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Endpoints with an outbound fetch or CPU-heavy parse get their own limiter
	searchLimiter := middleware.RateLimitMiddleware(
		middleware.SearchRateLimitConfig(deps.Config.RateLimitSearchThreshold, window))
	uploadLimiter := middleware.RateLimitMiddleware(
		middleware.UploadRateLimitConfig(deps.Config.RateLimitUploadThreshold, window))

	NewResumeHandler(v1, uploadLimiter, deps.ResumeUC)
	NewExperienceHandler(v1, deps.ExperienceUC)
	NewJobHandler(v1, searchLimiter, deps.SearchUC)
	NewSavedJobHandler(v1, deps.SavedJobUC)

	return r
}
