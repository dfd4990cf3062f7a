package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/internal/services"
)

type TestimonialHandler struct {
	service services.TestimonialServiceInterface
}

func NewTestimonialHandler(service services.TestimonialServiceInterface) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// List handles GET /api/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=60")
	c.JSON(http.StatusOK, testimonials)
}
