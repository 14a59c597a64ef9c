package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
)

type JobHandler struct {
	searchUC domain.SearchUsecase
}

func NewJobHandler(r *gin.RouterGroup, searchLimiter gin.HandlerFunc, searchUC domain.SearchUsecase) {
	handler := &JobHandler{searchUC: searchUC}

	r.POST("/search-jobs", searchLimiter, handler.Search)
}

// Search godoc
// @Summary      Search job listings
// @Description  Scrapes the upstream job site for the given skills and location, then filters by skill and experience level
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body body domain.SearchJobsInput true "Search filters"
// @Success      200 {object} response.Response{data=[]domain.JobListing}
// @Failure      400 {object} response.Response
// @Failure      502 {object} response.Response
// @Router       /search-jobs [post]
func (h *JobHandler) Search(c *gin.Context) {
	var input domain.SearchJobsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	listings, err := h.searchUC.FindJobs(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job listings", listings)
}
