package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/internal/landing"
	"github.com/origem/origem-api/pkg/logger"
	"go.uber.org/zap"
)

// LandingHandler serves the server-rendered landing page and its two forms
type LandingHandler struct {
	api   landing.API
	theme landing.Theme
}

func NewLandingHandler(api landing.API, theme landing.Theme) *LandingHandler {
	return &LandingHandler{api: api, theme: theme}
}

// Show handles GET /
func (h *LandingHandler) Show(c *gin.Context) {
	page := landing.NewPage(h.theme)
	h.render(c, http.StatusOK, page)
}

// SubmitContact handles POST /contact
func (h *LandingHandler) SubmitContact(c *gin.Context) {
	page := landing.NewPage(h.theme)
	if err := c.ShouldBind(&page.Contact); err != nil {
		h.rejectForm(c, bindStatus(err), page, landing.ContactFailedNotice, err)
		return
	}

	// The submission runs to completion even if the browser goes away
	page.SubmitContact(context.WithoutCancel(c.Request.Context()), h.api)
	h.render(c, http.StatusOK, page)
}

// SubmitNewsletter handles POST /newsletter
func (h *LandingHandler) SubmitNewsletter(c *gin.Context) {
	page := landing.NewPage(h.theme)
	if err := c.ShouldBind(&page.Newsletter); err != nil {
		h.rejectForm(c, bindStatus(err), page, landing.SubscribeFailedNotice, err)
		return
	}

	page.SubmitNewsletter(context.WithoutCancel(c.Request.Context()), h.api)
	h.render(c, http.StatusOK, page)
}

// RejectContact answers a contact post refused by middleware with the page,
// the failure notice and whatever fields could be read back
func (h *LandingHandler) RejectContact(c *gin.Context, status int, message string) {
	page := landing.NewPage(h.theme)
	if readableBody(c, status) {
		_ = c.ShouldBind(&page.Contact)
	}
	h.rejectForm(c, status, page, landing.ContactFailedNotice, errors.New(message))
}

// RejectNewsletter is RejectContact for the newsletter form
func (h *LandingHandler) RejectNewsletter(c *gin.Context, status int, message string) {
	page := landing.NewPage(h.theme)
	if readableBody(c, status) {
		_ = c.ShouldBind(&page.Newsletter)
	}
	h.rejectForm(c, status, page, landing.SubscribeFailedNotice, errors.New(message))
}

func (h *LandingHandler) rejectForm(c *gin.Context, status int, page *landing.Page, notice landing.Notice, err error) {
	logger.Warn("Form submission rejected",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status_code", status),
		zap.Error(err))
	_ = c.Error(err) //nolint:errcheck

	page.Notices = append(page.Notices, notice)
	h.render(c, status, page)
}

// readableBody caps the body so the refused form can be echoed back. Bodies
// already declared too large are left unread.
func readableBody(c *gin.Context, status int) bool {
	if status == http.StatusRequestEntityTooLarge {
		return false
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, formBodyLimit)
	return true
}

func bindStatus(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// render loads testimonials for this page view and writes the HTML
func (h *LandingHandler) render(c *gin.Context, status int, page *landing.Page) {
	page.LoadTestimonials(c.Request.Context(), h.api)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := landing.Render(c.Writer, page); err != nil {
		logger.Error("Failed to render landing page", zap.Error(err))
		_ = c.Error(err) //nolint:errcheck
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
