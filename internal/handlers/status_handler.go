package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/internal/services"
)

type StatusHandler struct {
	service services.StatusServiceInterface
}

func NewStatusHandler(service services.StatusServiceInterface) *StatusHandler {
	return &StatusHandler{service: service}
}

// Root handles GET /api/
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Hello World"})
}

// Create handles POST /api/status
func (h *StatusHandler) Create(c *gin.Context) {
	var req models.StatusCheckRequest
	if !bindJSON(c, &req) {
		return
	}

	check, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, check)
}

// List handles GET /api/status
func (h *StatusHandler) List(c *gin.Context) {
	checks, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, checks)
}
