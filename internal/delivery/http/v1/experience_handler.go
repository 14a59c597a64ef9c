package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(r *gin.RouterGroup, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	r.POST("/add-experience", handler.Add)
}

type addExperienceRequest struct {
	Email string `json:"email"`
	Years *int   `json:"years"`
}

// Add godoc
// @Summary      Record years of experience for a candidate
// @Description  Validates email and years, stores the record and returns the derived level
// @Tags         experience
// @Accept       json
// @Produce      json
// @Param        body body addExperienceRequest true "Experience payload"
// @Success      200 {object} response.Response{data=domain.ExperienceRecord}
// @Failure      400 {object} response.Response
// @Router       /add-experience [post]
func (h *ExperienceHandler) Add(c *gin.Context) {
	var req addExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Years == nil {
		response.Error(c, http.StatusBadRequest, "Experience years must be a non-negative integer", nil)
		return
	}

	record, err := h.experienceUC.AddExperience(c.Request.Context(), req.Email, *req.Years)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience recorded", record)
}
