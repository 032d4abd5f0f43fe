package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/models"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

var _ ContentService = (*ContentRepository)(nil)

// ContentRepository holds the site content document in memory and writes it through to
// the content slot after every mutation.
//
// The repository starts in the loading state. Until Hydrate succeeds every operation
// returns ErrNotReady and nothing is written to the slot.
type ContentRepository struct {
	mu     sync.RWMutex
	store  slot.Store
	logger *zap.Logger
	doc    models.AppData
	ready  bool

	newID func() string
	now   func() time.Time
}

// ContentOption configures a ContentRepository.
type ContentOption func(*ContentRepository)

// WithIDGenerator replaces the UUID generator used for new entities.
func WithIDGenerator(fn func() string) ContentOption {
	return func(r *ContentRepository) { r.newID = fn }
}

// WithClock replaces the clock used to date inquiries.
func WithClock(fn func() time.Time) ContentOption {
	return func(r *ContentRepository) { r.now = fn }
}

// NewContentRepository creates a repository over the given slot store.
func NewContentRepository(store slot.Store, logger *zap.Logger, opts ...ContentOption) *ContentRepository {
	r := &ContentRepository{
		store:  store,
		logger: logger,
		doc:    models.DefaultAppData(),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Hydrate reads the content slot once and moves the repository to the ready state.
// An empty slot keeps the default seed. A document that cannot be parsed is reported as
// ErrMalformedDocument and the repository stays in the loading state.
// Once ready, the document is written back so the slot always holds it.
func (r *ContentRepository) Hydrate(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ready {
		return nil
	}

	data, err := r.store.Get(ctx, slot.ContentKey)
	switch {
	case errors.Is(err, slot.ErrSlotEmpty):
		r.doc = models.DefaultAppData()
		r.logger.Info("Content slot is empty, using default document")
	case err != nil:
		return fmt.Errorf("failed to read content slot: %w", err)
	default:
		doc, err := models.DecodeDocument(data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		r.doc = doc
		r.logger.Info("Content loaded from slot",
			zap.Int("services", len(doc.Services)),
			zap.Int("projects", len(doc.Projects)),
			zap.Int("inquiries", len(doc.Inquiries)))
	}
	r.ready = true

	if err := r.persistLocked(ctx); err != nil {
		r.logger.Warn("Initial write-through failed; the next mutation will retry", zap.Error(err))
	}
	return nil
}

// Ready reports whether hydration has completed.
func (r *ContentRepository) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready
}

// persistLocked writes the whole document to the content slot. Callers hold the write lock.
func (r *ContentRepository) persistLocked(ctx context.Context) error {
	data, err := models.EncodeDocument(r.doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := r.store.Set(ctx, slot.ContentKey, data); err != nil {
		r.logger.Error("Failed to write content slot", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// mutate applies fn to the document and writes it through. The in-memory change is kept
// even when the write fails.
func (r *ContentRepository) mutate(ctx context.Context, op string, fn func(doc *models.AppData)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ready {
		return ErrNotReady
	}
	fn(&r.doc)
	r.logger.Debug("Content mutated", zap.String("op", op))
	return r.persistLocked(ctx)
}

// read runs fn under the read lock once the repository is ready.
func (r *ContentRepository) read(fn func(doc *models.AppData)) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.ready {
		return ErrNotReady
	}
	fn(&r.doc)
	return nil
}

func (r *ContentRepository) Document() (models.AppData, error) {
	var out models.AppData
	err := r.read(func(doc *models.AppData) { out = doc.Clone() })
	return out, err
}

func (r *ContentRepository) Overview() (models.Overview, error) {
	var out models.Overview
	err := r.read(func(doc *models.AppData) {
		out = models.Overview{
			Services:     len(doc.Services),
			Projects:     len(doc.Projects),
			Plans:        len(doc.Plans),
			Testimonials: len(doc.Testimonials),
			Inquiries:    len(doc.Inquiries),
		}
		for _, p := range doc.Projects {
			if p.Featured {
				out.FeaturedProjects++
			}
		}
	})
	return out, err
}

// Services

func (r *ContentRepository) Services() ([]models.Service, error) {
	var out []models.Service
	err := r.read(func(doc *models.AppData) { out = append([]models.Service{}, doc.Services...) })
	return out, err
}

func (r *ContentRepository) ServiceByID(id string) (models.Service, bool, error) {
	var (
		out   models.Service
		found bool
	)
	err := r.read(func(doc *models.AppData) {
		if i := indexOf(doc.Services, id, serviceID); i >= 0 {
			out, found = doc.Services[i], true
		}
	})
	return out, found, err
}

// AddService appends the service. An empty ID is replaced with a generated one.
func (r *ContentRepository) AddService(ctx context.Context, service models.Service) (models.Service, error) {
	err := r.mutate(ctx, "add_service", func(doc *models.AppData) {
		if service.ID == "" {
			service.ID = r.newID()
		}
		doc.Services = append(doc.Services, service)
	})
	return service, err
}

func (r *ContentRepository) UpdateService(ctx context.Context, service models.Service) error {
	return r.mutate(ctx, "update_service", func(doc *models.AppData) {
		replaceFirst(doc.Services, service, serviceID)
	})
}

func (r *ContentRepository) DeleteService(ctx context.Context, id string) error {
	return r.mutate(ctx, "delete_service", func(doc *models.AppData) {
		doc.Services = removeAll(doc.Services, id, serviceID)
	})
}

// Projects

func (r *ContentRepository) Projects() ([]models.Project, error) {
	out := []models.Project{}
	err := r.read(func(doc *models.AppData) {
		for _, p := range doc.Projects {
			out = append(out, p.Clone())
		}
	})
	return out, err
}

// FeaturedProjects returns the homepage highlight subset, in display order.
func (r *ContentRepository) FeaturedProjects() ([]models.Project, error) {
	var out []models.Project
	err := r.read(func(doc *models.AppData) { out = doc.FeaturedProjects() })
	return out, err
}

func (r *ContentRepository) ProjectByID(id string) (models.Project, bool, error) {
	var (
		out   models.Project
		found bool
	)
	err := r.read(func(doc *models.AppData) {
		if i := indexOf(doc.Projects, id, projectID); i >= 0 {
			out, found = doc.Projects[i].Clone(), true
		}
	})
	return out, found, err
}

// AddProject appends the project. An empty ID is replaced with a generated one.
func (r *ContentRepository) AddProject(ctx context.Context, project models.Project) (models.Project, error) {
	project = project.Clone()
	err := r.mutate(ctx, "add_project", func(doc *models.AppData) {
		if project.ID == "" {
			project.ID = r.newID()
		}
		doc.Projects = append(doc.Projects, project.Clone())
	})
	return project, err
}

func (r *ContentRepository) UpdateProject(ctx context.Context, project models.Project) error {
	return r.mutate(ctx, "update_project", func(doc *models.AppData) {
		replaceFirst(doc.Projects, project.Clone(), projectID)
	})
}

// ToggleProjectFeatured flips Featured on the first matching project and returns the
// updated copy. An unknown id changes nothing and reports found=false.
func (r *ContentRepository) ToggleProjectFeatured(ctx context.Context, id string) (models.Project, bool, error) {
	var (
		out   models.Project
		found bool
	)
	err := r.mutate(ctx, "toggle_project_featured", func(doc *models.AppData) {
		if i := indexOf(doc.Projects, id, projectID); i >= 0 {
			doc.Projects[i].Featured = !doc.Projects[i].Featured
			out, found = doc.Projects[i].Clone(), true
		}
	})
	return out, found, err
}

func (r *ContentRepository) DeleteProject(ctx context.Context, id string) error {
	return r.mutate(ctx, "delete_project", func(doc *models.AppData) {
		doc.Projects = removeAll(doc.Projects, id, projectID)
	})
}

// Plans

func (r *ContentRepository) Plans() ([]models.Plan, error) {
	var out []models.Plan
	err := r.read(func(doc *models.AppData) {
		out = make([]models.Plan, len(doc.Plans))
		for i, p := range doc.Plans {
			out[i] = p.Clone()
		}
	})
	return out, err
}

func (r *ContentRepository) PlanByID(id string) (models.Plan, bool, error) {
	var (
		out   models.Plan
		found bool
	)
	err := r.read(func(doc *models.AppData) {
		if i := indexOf(doc.Plans, id, planID); i >= 0 {
			out, found = doc.Plans[i].Clone(), true
		}
	})
	return out, found, err
}

func (r *ContentRepository) UpdatePlan(ctx context.Context, plan models.Plan) error {
	return r.mutate(ctx, "update_plan", func(doc *models.AppData) {
		replaceFirst(doc.Plans, plan.Clone(), planID)
	})
}

// Testimonials

func (r *ContentRepository) Testimonials() ([]models.Testimonial, error) {
	var out []models.Testimonial
	err := r.read(func(doc *models.AppData) { out = append([]models.Testimonial{}, doc.Testimonials...) })
	return out, err
}

func (r *ContentRepository) TestimonialByID(id string) (models.Testimonial, bool, error) {
	var (
		out   models.Testimonial
		found bool
	)
	err := r.read(func(doc *models.AppData) {
		if i := indexOf(doc.Testimonials, id, testimonialID); i >= 0 {
			out, found = doc.Testimonials[i], true
		}
	})
	return out, found, err
}

// AddTestimonial appends the testimonial. An empty ID is replaced with a generated one.
func (r *ContentRepository) AddTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	err := r.mutate(ctx, "add_testimonial", func(doc *models.AppData) {
		if testimonial.ID == "" {
			testimonial.ID = r.newID()
		}
		doc.Testimonials = append(doc.Testimonials, testimonial)
	})
	return testimonial, err
}

func (r *ContentRepository) UpdateTestimonial(ctx context.Context, testimonial models.Testimonial) error {
	return r.mutate(ctx, "update_testimonial", func(doc *models.AppData) {
		replaceFirst(doc.Testimonials, testimonial, testimonialID)
	})
}

func (r *ContentRepository) DeleteTestimonial(ctx context.Context, id string) error {
	return r.mutate(ctx, "delete_testimonial", func(doc *models.AppData) {
		doc.Testimonials = removeAll(doc.Testimonials, id, testimonialID)
	})
}

// Inquiries

func (r *ContentRepository) Inquiries() ([]models.Inquiry, error) {
	var out []models.Inquiry
	err := r.read(func(doc *models.AppData) { out = append([]models.Inquiry{}, doc.Inquiries...) })
	return out, err
}

// AddInquiry puts the inquiry at the front of the list. Missing ID and date are filled in.
func (r *ContentRepository) AddInquiry(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error) {
	err := r.mutate(ctx, "add_inquiry", func(doc *models.AppData) {
		if inquiry.ID == "" {
			inquiry.ID = r.newID()
		}
		if inquiry.Date == "" {
			inquiry.Date = r.now().UTC().Format(time.RFC3339)
		}
		doc.Inquiries = append([]models.Inquiry{inquiry}, doc.Inquiries...)
	})
	return inquiry, err
}

// Reset replaces the whole document, inquiries included, with the default seed.
func (r *ContentRepository) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}
	err := r.mutate(ctx, "reset", func(doc *models.AppData) {
		*doc = models.DefaultAppData()
	})
	if err == nil || errors.Is(err, ErrPersist) {
		r.logger.Warn("Content reset to defaults")
	}
	return err
}

func serviceID(s models.Service) string         { return s.ID }
func projectID(p models.Project) string         { return p.ID }
func planID(p models.Plan) string               { return p.ID }
func testimonialID(t models.Testimonial) string { return t.ID }

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

// replaceFirst overwrites the first entry with a matching id. No match leaves items unchanged.
func replaceFirst[T any](items []T, v T, idOf func(T) string) {
	if i := indexOf(items, idOf(v), idOf); i >= 0 {
		items[i] = v
	}
}

// removeAll returns items without any entry matching id. The result never aliases items.
func removeAll[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
