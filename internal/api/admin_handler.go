package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/core"
	"github.com/starterkart/starterkart-backend/internal/models"
)

// placeholderImage is used as the main image of a project saved without images.
const placeholderImage = "https://picsum.photos/400/300"

// AdminHandler serves the management endpoints. Routes are gated by middleware.RequireAdmin.
type AdminHandler struct {
	content core.ContentService
	logger  *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(content core.ContentService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{content: content, logger: logger}
}

// respondUpdated answers an update. Unknown ids are a silent no-op and get 204.
func respondUpdated[T any](c *gin.Context, v T, found bool) {
	if !found {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, v)
}

// GetDocument handles GET /admin/document, the whole document including inquiries.
func (h *AdminHandler) GetDocument(c *gin.Context) {
	doc, err := h.content.Document()
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetOverview handles GET /admin/overview
func (h *AdminHandler) GetOverview(c *gin.Context) {
	overview, err := h.content.Overview()
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// ListInquiries handles GET /admin/inquiries, newest first.
func (h *AdminHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.content.Inquiries()
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// Reset handles POST /admin/reset
func (h *AdminHandler) Reset(c *gin.Context) {
	var req models.ResetRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	if err := h.content.Reset(c.Request.Context(), req.Confirm); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Content reset to defaults"})
}

// --- Services ---

// CreateService handles POST /admin/services
func (h *AdminHandler) CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	service, err := h.content.AddService(c.Request.Context(), models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        models.ParseIconName(req.Icon),
	})
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, renderService(service))
}

// UpdateService handles PUT /admin/services/:id
func (h *AdminHandler) UpdateService(c *gin.Context) {
	var req models.UpdateServiceRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	id := c.Param("id")
	err := h.content.UpdateService(c.Request.Context(), models.Service{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Icon:        models.ParseIconName(req.Icon),
	})
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	service, found, err := h.content.ServiceByID(id)
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	respondUpdated(c, renderService(service), found)
}

// DeleteService handles DELETE /admin/services/:id
func (h *AdminHandler) DeleteService(c *gin.Context) {
	if err := h.content.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Projects ---

// projectFromRequest applies the admin form rules: blank image entries are dropped and the
// first remaining image becomes the main one.
func projectFromRequest(id string, req models.ProjectRequest) models.Project {
	images := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	mainImage := placeholderImage
	if len(images) > 0 {
		mainImage = images[0]
	}
	return models.Project{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     mainImage,
		Images:       images,
		ShopifyTheme: req.ShopifyTheme,
		Link:         req.Link,
		Featured:     req.Featured,
	}
}

// CreateProject handles POST /admin/projects
func (h *AdminHandler) CreateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	project, err := h.content.AddProject(c.Request.Context(), projectFromRequest("", req))
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PUT /admin/projects/:id
func (h *AdminHandler) UpdateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	id := c.Param("id")
	if err := h.content.UpdateProject(c.Request.Context(), projectFromRequest(id, req)); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	project, found, err := h.content.ProjectByID(id)
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	respondUpdated(c, project, found)
}

// ToggleProjectFeatured handles POST /admin/projects/:id/featured
func (h *AdminHandler) ToggleProjectFeatured(c *gin.Context) {
	project, found, err := h.content.ToggleProjectFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	respondUpdated(c, project, found)
}

// DeleteProject handles DELETE /admin/projects/:id
func (h *AdminHandler) DeleteProject(c *gin.Context) {
	if err := h.content.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Plans ---

// UpdatePlan handles PUT /admin/plans/:id
func (h *AdminHandler) UpdatePlan(c *gin.Context) {
	var req models.UpdatePlanRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	id := c.Param("id")
	features := req.Features
	if features == nil {
		features = []string{}
	}
	err := h.content.UpdatePlan(c.Request.Context(), models.Plan{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Features:    features,
		Recommended: req.Recommended,
	})
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	plan, found, err := h.content.PlanByID(id)
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	respondUpdated(c, plan, found)
}

// --- Testimonials ---

// CreateTestimonial handles POST /admin/testimonials. Rating defaults to 5.
func (h *AdminHandler) CreateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	rating := req.Rating
	if rating == 0 {
		rating = defaultRating
	}
	testimonial, err := h.content.AddTestimonial(c.Request.Context(), models.Testimonial{
		ClientName:   req.ClientName,
		BusinessName: req.BusinessName,
		Content:      req.Content,
		Rating:       rating,
	})
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

// UpdateTestimonial handles PUT /admin/testimonials/:id
func (h *AdminHandler) UpdateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	id := c.Param("id")
	rating := req.Rating
	if rating == 0 {
		rating = defaultRating
	}
	err := h.content.UpdateTestimonial(c.Request.Context(), models.Testimonial{
		ID:           id,
		ClientName:   req.ClientName,
		BusinessName: req.BusinessName,
		Content:      req.Content,
		Rating:       rating,
	})
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	testimonial, found, err := h.content.TestimonialByID(id)
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	respondUpdated(c, testimonial, found)
}

// DeleteTestimonial handles DELETE /admin/testimonials/:id
func (h *AdminHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.content.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
