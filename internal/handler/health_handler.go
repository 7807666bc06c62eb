package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentsift/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	annotator port.Annotator
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(annotator port.Annotator) *HealthHandler {
	return &HealthHandler{annotator: annotator}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness handles GET /readyz. It runs a short annotation so a wedged
// language model reports unavailable instead of ok.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if _, err := h.annotator.Annotate(c.Request.Context(), "ready"); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Error:  "language model not available",
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
