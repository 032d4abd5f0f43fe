package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/core"
)

// ContentHandler serves the public, read-only view of the site.
type ContentHandler struct {
	content      core.ContentService
	whatsAppLink string
	logger       *zap.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(content core.ContentService, whatsAppLink string, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{content: content, whatsAppLink: whatsAppLink, logger: logger}
}

// GetContent handles GET /content
func (h *ContentHandler) GetContent(c *gin.Context) {
	doc, err := h.content.Document()
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ContentResponse{
		Services:         renderServices(doc.Services),
		FeaturedProjects: doc.FeaturedProjects(),
		Projects:         doc.Projects,
		Plans:            doc.Plans,
		Testimonials:     doc.Testimonials,
	})
}

// ListServices handles GET /services
func (h *ContentHandler) ListServices(c *gin.Context) {
	services, err := h.content.Services()
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, renderServices(services))
}

// ListProjects handles GET /projects. ?featured=true returns only the homepage highlights.
func (h *ContentHandler) ListProjects(c *gin.Context) {
	featuredOnly, _ := strconv.ParseBool(c.Query("featured"))

	list := h.content.Projects
	if featuredOnly {
		list = h.content.FeaturedProjects
	}
	projects, err := list()
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListPlans handles GET /plans
func (h *ContentHandler) ListPlans(c *gin.Context) {
	plans, err := h.content.Plans()
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ListTestimonials handles GET /testimonials
func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.content.Testimonials()
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// GetPlanLink handles GET /plans/:planId/link
func (h *ContentHandler) GetPlanLink(c *gin.Context) {
	plan, found, err := h.content.PlanByID(c.Param("planId"))
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Plan not found"})
		return
	}

	text := core.PlanLinkText(plan.Name)
	c.JSON(http.StatusOK, LinkResponse{Text: text, URL: core.WhatsAppLink(h.whatsAppLink, text)})
}
