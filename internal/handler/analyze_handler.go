package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentsift/internal/service"
)

// AnalyzeHandler handles resume analysis endpoints.
type AnalyzeHandler struct {
	analysisService service.AnalysisService
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysisService service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: analysisService}
}

// Analyze handles POST /api/v1/resumes/analyze
// @Summary Analyze a resume
// @Description Upload a resume (PDF or DOCX) and receive a structured candidate profile
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume to analyze (PDF or DOCX)"
// @Success 200 {object} Response{data=domain.ResumeAnalysis} "Structured analysis"
// @Failure 400 {object} ErrorResponseBody "Missing file, unsupported type, or empty extraction"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Analysis failed"
// @Router /resumes/analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), service.AnalyzeInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
