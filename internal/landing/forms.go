package landing

import (
	"strings"

	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/pkg/origem"
)

// ContactForm holds the contact form fields as typed by the visitor.
// Submitting is the in-flight flag: while set the submit button is disabled.
type ContactForm struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	CountryCode string `form:"country_code"`
	Message     string `form:"message"`
	Submitting  bool   `form:"-"`
}

// NewContactForm returns an empty form with the default country code
func NewContactForm() ContactForm {
	return ContactForm{CountryCode: models.DefaultCountryCode}
}

// Reset clears every field and restores the default country code
func (f *ContactForm) Reset() {
	*f = NewContactForm()
}

// Submission builds the request body for one submit
func (f *ContactForm) Submission() origem.ContactSubmission {
	countryCode := strings.TrimSpace(f.CountryCode)
	if countryCode == "" {
		countryCode = models.DefaultCountryCode
	}
	return origem.ContactSubmission{
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		CountryCode: countryCode,
		Message:     f.Message,
	}
}

// SubmitLabel is the text on the contact submit button
func (f ContactForm) SubmitLabel() string {
	if f.Submitting {
		return f.BusyLabel()
	}
	return "Send Message"
}

// BusyLabel is the button text while a submit is in flight
func (ContactForm) BusyLabel() string { return "Sending..." }

// NewsletterForm holds the newsletter signup field
type NewsletterForm struct {
	Email      string `form:"email"`
	Submitting bool   `form:"-"`
}

// SubmitLabel is the text on the newsletter submit button
func (f NewsletterForm) SubmitLabel() string {
	if f.Submitting {
		return f.BusyLabel()
	}
	return "Subscribe"
}

// BusyLabel is the button text while a signup is in flight
func (NewsletterForm) BusyLabel() string { return "Subscribing..." }
