package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/internal/database/postgres"
	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/internal/services"
)

// ContactHandler serves the contact form endpoints
type ContactHandler struct {
	service services.ContactServiceInterface
}

func NewContactHandler(service services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// List handles GET /api/contacts
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context(), listLimit(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// NewsletterHandler serves the newsletter endpoints
type NewsletterHandler struct {
	service services.NewsletterServiceInterface
}

func NewNewsletterHandler(service services.NewsletterServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

// Subscribe handles POST /api/newsletter. A repeated email still answers 200.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if !bindJSON(c, &req) {
		return
	}

	sub, created, err := h.service.Subscribe(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, models.MessageResponse{Message: models.AlreadySubscribedMessage})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// List handles GET /api/newsletter
func (h *NewsletterHandler) List(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context(), listLimit(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

// listLimit reads ?limit=, clamped to the store maximum
func listLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 || limit > postgres.DefaultListLimit {
		return postgres.DefaultListLimit
	}
	return limit
}
