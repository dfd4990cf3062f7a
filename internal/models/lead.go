package models

import "time"

// DefaultCountryCode is preselected on the contact form
const DefaultCountryCode = "+91"

// CountryCode is one entry of the contact form's dialling code selector
type CountryCode struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CountryCodes is the closed set of dialling codes accepted for contacts, in display order
var CountryCodes = []CountryCode{
	{Code: "+1", Label: "US +1"},
	{Code: "+91", Label: "IN +91"},
	{Code: "+44", Label: "UK +44"},
	{Code: "+61", Label: "AU +61"},
	{Code: "+81", Label: "JP +81"},
	{Code: "+86", Label: "CN +86"},
}

// IsValidCountryCode reports whether code belongs to CountryCodes
func IsValidCountryCode(code string) bool {
	for _, cc := range CountryCodes {
		if cc.Code == code {
			return true
		}
	}
	return false
}

// ContactRequest is the body of POST /api/contact
type ContactRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email,max=320"`
	Phone       string `json:"phone" binding:"required,max=40"`
	CountryCode string `json:"country_code" binding:"required,oneof=+1 +91 +44 +61 +81 +86"`
	Message     string `json:"message" binding:"required,max=5000"`
}

// Contact is a stored contact form submission
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CountryCode string    `json:"country_code"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewsletterRequest is the body of POST /api/newsletter
type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email,max=320"`
}

// NewsletterSubscription is a stored newsletter signup
type NewsletterSubscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageResponse is a bare message reply
type MessageResponse struct {
	Message string `json:"message"`
}

// AlreadySubscribedMessage is returned for a repeated newsletter email
const AlreadySubscribedMessage = "Email already subscribed"
