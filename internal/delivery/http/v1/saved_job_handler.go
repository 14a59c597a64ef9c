package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(r *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	saved := r.Group("/saved-jobs")
	{
		saved.POST("", handler.Save)
		saved.GET("", handler.List)
		saved.DELETE("/:id", handler.Delete)
	}
	r.GET("/stats/dashboard", handler.Stats)
}

// Save godoc
// @Summary      Bookmark a job listing
// @Description  Saves a listing for later; saving the same link twice returns the existing record
// @Tags         saved-jobs
// @Accept       json
// @Produce      json
// @Param        body body domain.SavedJob true "Job to save"
// @Success      200 {object} response.Response{data=domain.SavedJob}
// @Success      201 {object} response.Response{data=domain.SavedJob}
// @Failure      400 {object} response.Response
// @Router       /saved-jobs [post]
func (h *SavedJobHandler) Save(c *gin.Context) {
	var job domain.SavedJob
	if err := c.ShouldBindJSON(&job); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	saved, created, err := h.savedJobUC.SaveJob(c.Request.Context(), &job)
	if err != nil {
		c.Error(err)
		return
	}

	if !created {
		response.Success(c, http.StatusOK, "Job already saved", saved)
		return
	}
	response.Success(c, http.StatusCreated, "Job saved successfully", saved)
}

// List godoc
// @Summary      List saved jobs for a candidate
// @Tags         saved-jobs
// @Produce      json
// @Param        email query string true "Candidate email"
// @Success      200 {object} response.Response{data=[]domain.SavedJob}
// @Failure      400 {object} response.Response
// @Router       /saved-jobs [get]
func (h *SavedJobHandler) List(c *gin.Context) {
	jobs, err := h.savedJobUC.ListSavedJobs(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved jobs", jobs)
}

// Delete godoc
// @Summary      Delete a saved job
// @Tags         saved-jobs
// @Produce      json
// @Param        id path string true "Saved job ID"
// @Param        email query string true "Candidate email"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /saved-jobs/{id} [delete]
func (h *SavedJobHandler) Delete(c *gin.Context) {
	if err := h.savedJobUC.DeleteSavedJob(c.Request.Context(), c.Query("email"), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved job deleted", nil)
}

// Stats godoc
// @Summary      Dashboard statistics
// @Description  Counts a candidate's saved jobs by application status bucket
// @Tags         saved-jobs
// @Produce      json
// @Param        email query string true "Candidate email"
// @Success      200 {object} response.Response{data=domain.DashboardStats}
// @Failure      400 {object} response.Response
// @Router       /stats/dashboard [get]
func (h *SavedJobHandler) Stats(c *gin.Context) {
	stats, err := h.savedJobUC.DashboardStats(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard statistics", stats)
}
