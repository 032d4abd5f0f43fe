package core

import (
	"context"

	"github.com/starterkart/starterkart-backend/internal/models"
)

// ContentService defines the operations on the site content document.
// Reads return copies; the document changes only through the mutation methods.
type ContentService interface {
	// Hydrate loads the persisted document, falling back to the default seed when the slot is empty.
	Hydrate(ctx context.Context) error
	Ready() bool

	Document() (models.AppData, error)
	Overview() (models.Overview, error)

	Services() ([]models.Service, error)
	ServiceByID(id string) (models.Service, bool, error)
	AddService(ctx context.Context, service models.Service) (models.Service, error)
	UpdateService(ctx context.Context, service models.Service) error
	DeleteService(ctx context.Context, id string) error

	Projects() ([]models.Project, error)
	FeaturedProjects() ([]models.Project, error)
	ProjectByID(id string) (models.Project, bool, error)
	AddProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) error
	// ToggleProjectFeatured flips the featured flag of the first project with the id.
	ToggleProjectFeatured(ctx context.Context, id string) (models.Project, bool, error)
	DeleteProject(ctx context.Context, id string) error

	// Plans can be updated but never added or removed.
	Plans() ([]models.Plan, error)
	PlanByID(id string) (models.Plan, bool, error)
	UpdatePlan(ctx context.Context, plan models.Plan) error

	Testimonials() ([]models.Testimonial, error)
	TestimonialByID(id string) (models.Testimonial, bool, error)
	AddTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonial models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error

	// Inquiries are newest first and can only be added.
	Inquiries() ([]models.Inquiry, error)
	AddInquiry(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error)

	// Reset restores the default seed. confirmed must be true.
	Reset(ctx context.Context, confirmed bool) error
}

// SessionService defines the administrator display gate.
type SessionService interface {
	Hydrate(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	IsAdmin() bool
}

// Notifier hands new inquiries to the site owner. Delivery is best-effort.
type Notifier interface {
	Notify(inquiry models.Inquiry)
}
