package models

// Required string fields use `notblank` so a value of only whitespace counts as missing.

// CreateServiceRequest represents the request body for adding a service.
type CreateServiceRequest struct {
	Title       string `json:"title" binding:"required,notblank"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"` // Defaults to Box
}

// UpdateServiceRequest replaces every field of an existing service.
type UpdateServiceRequest struct {
	Title       string `json:"title" binding:"required,notblank"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ProjectRequest is used both to add and to replace a project.
// ImageURL is derived from the first entry of Images.
type ProjectRequest struct {
	Title        string   `json:"title" binding:"required,notblank"`
	Description  string   `json:"description,omitempty"`
	Images       []string `json:"images,omitempty"`
	ShopifyTheme string   `json:"shopifyTheme,omitempty"`
	Link         string   `json:"link,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

// UpdatePlanRequest replaces every field of an existing plan. Plans cannot be added or removed.
type UpdatePlanRequest struct {
	Name        string   `json:"name" binding:"required,notblank"`
	Price       string   `json:"price" binding:"required,notblank"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended"`
}

// TestimonialRequest is the admin form for a testimonial. Rating defaults to 5.
type TestimonialRequest struct {
	ClientName   string `json:"clientName" binding:"required,notblank"`
	BusinessName string `json:"businessName,omitempty"`
	Content      string `json:"content,omitempty"`
	Rating       int    `json:"rating,omitempty"`
}

// ReviewRequest is the public review form. It requires the review text as well.
type ReviewRequest struct {
	ClientName   string `json:"clientName" binding:"required,notblank"`
	BusinessName string `json:"businessName,omitempty"`
	Content      string `json:"content" binding:"required,notblank"`
	Rating       int    `json:"rating,omitempty"`
}

// InquiryRequest is the contact form. Every field is required.
type InquiryRequest struct {
	Name    string `json:"name" binding:"required,notblank"`
	Email   string `json:"email" binding:"required,notblank"`
	Theme   string `json:"theme" binding:"required,notblank"`
	Message string `json:"message" binding:"required,notblank"`
}

// LoginRequest carries the administrator credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

// ResetRequest must carry Confirm=true for the reset to happen.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}
