package landing

import (
	"context"

	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/origem"
	"go.uber.org/zap"
)

// API is the subset of the Origem client the page calls. Implemented by origem.Client.
type API interface {
	ListTestimonials(ctx context.Context) ([]origem.Testimonial, error)
	SubmitContact(ctx context.Context, submission origem.ContactSubmission) origem.Result
	SubscribeNewsletter(ctx context.Context, email string) origem.Result
}

var _ API = (*origem.Client)(nil)

// Page is the state behind one rendering of the landing page
type Page struct {
	Theme        Theme
	Content      Content
	CountryCodes []models.CountryCode
	Testimonials []origem.Testimonial
	Contact      ContactForm
	Newsletter   NewsletterForm
	Notices      []Notice
}

// NewPage creates a page with empty forms and no testimonials
func NewPage(theme Theme) *Page {
	return &Page{
		Theme:        theme,
		Content:      DefaultContent,
		CountryCodes: models.CountryCodes,
		Testimonials: []origem.Testimonial{},
		Contact:      NewContactForm(),
	}
}

// LoadTestimonials fetches the testimonial list once. Failures are logged and
// leave the list empty; the visitor sees no error.
func (p *Page) LoadTestimonials(ctx context.Context, api API) {
	testimonials, err := api.ListTestimonials(ctx)
	if err != nil {
		logger.Warn("Error fetching testimonials", zap.Error(err))
		p.Testimonials = []origem.Testimonial{}
		return
	}
	if testimonials == nil {
		testimonials = []origem.Testimonial{}
	}
	p.Testimonials = testimonials
}

// SubmitContact sends the contact form. On success the fields are reset; on
// failure they are kept so the visitor can retry.
func (p *Page) SubmitContact(ctx context.Context, api API) origem.Result {
	p.Contact.Submitting = true
	defer func() { p.Contact.Submitting = false }()

	result := api.SubmitContact(ctx, p.Contact.Submission())
	if !result.OK {
		logger.Warn("Contact submission failed", zap.Int("status_code", result.Status), zap.Error(result.Err))
		p.Notices = append(p.Notices, ContactFailedNotice)
		return result
	}

	p.Notices = append(p.Notices, ContactSentNotice)
	p.Contact.Reset()
	return result
}

// SubmitNewsletter sends the newsletter signup and clears the email on success
func (p *Page) SubmitNewsletter(ctx context.Context, api API) origem.Result {
	p.Newsletter.Submitting = true
	defer func() { p.Newsletter.Submitting = false }()

	result := api.SubscribeNewsletter(ctx, p.Newsletter.Email)
	if !result.OK {
		logger.Warn("Newsletter subscription failed", zap.Int("status_code", result.Status), zap.Error(result.Err))
		p.Notices = append(p.Notices, SubscribeFailedNotice)
		return result
	}

	p.Notices = append(p.Notices, SubscribedNotice)
	p.Newsletter.Email = ""
	return result
}
