package api

import "github.com/starterkart/starterkart-backend/internal/models"

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ServiceView is a service with its icon resolved to a renderable glyph name.
type ServiceView struct {
	models.Service
	Glyph string `json:"glyph"`
}

// ContentResponse is the public view of the site. Inquiries are never included.
type ContentResponse struct {
	Services         []ServiceView        `json:"services"`
	FeaturedProjects []models.Project     `json:"featuredProjects"`
	Projects         []models.Project     `json:"projects"`
	Plans            []models.Plan        `json:"plans"`
	Testimonials     []models.Testimonial `json:"testimonials"`
}

// InquiryResponse is returned after the contact form is accepted.
type InquiryResponse struct {
	Inquiry      models.Inquiry `json:"inquiry"`
	WhatsAppLink string         `json:"whatsappLink"` // Hand-off to the chat channel
}

// LinkResponse carries a prepared chat hand-off link.
type LinkResponse struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// SessionResponse reports the state of the administrator display gate.
type SessionResponse struct {
	Admin bool `json:"admin"`
}
