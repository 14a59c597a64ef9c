package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, uploadLimiter gin.HandlerFunc, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	r.POST("/upload-resume", uploadLimiter, handler.Upload)
	r.GET("/resume/:email", handler.Get)
}

// Upload godoc
// @Summary      Upload and parse a resume
// @Description  Accepts a PDF resume, extracts name/email/phone/skills and stores the profile keyed by email
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Resume PDF"
// @Success      200 {object} response.Response{data=domain.CandidateProfile}
// @Failure      400 {object} response.Response
// @Router       /upload-resume [post]
func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Unable to read uploaded file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Unable to read uploaded file", nil)
		return
	}

	profile, err := h.resumeUC.UploadResume(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume parsed successfully", profile)
}

// Get godoc
// @Summary      Get a stored candidate profile
// @Tags         resumes
// @Produce      json
// @Param        email path string true "Candidate email"
// @Success      200 {object} response.Response{data=domain.CandidateProfile}
// @Failure      404 {object} response.Response
// @Router       /resume/{email} [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	profile, err := h.resumeUC.GetProfile(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}
