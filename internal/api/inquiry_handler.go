package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/core"
	"github.com/starterkart/starterkart-backend/internal/models"
)

const defaultRating = 5

// SubmissionHandler accepts the public forms: contact inquiries and client reviews.
type SubmissionHandler struct {
	content      core.ContentService
	notifier     core.Notifier
	whatsAppLink string
	logger       *zap.Logger
}

// NewSubmissionHandler creates a new SubmissionHandler. notifier may be nil.
func NewSubmissionHandler(content core.ContentService, notifier core.Notifier, whatsAppLink string, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{content: content, notifier: notifier, whatsAppLink: whatsAppLink, logger: logger}
}

// SubmitInquiry handles POST /inquiries
func (h *SubmissionHandler) SubmitInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}

	inquiry, err := h.content.AddInquiry(c.Request.Context(), models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Theme:   req.Theme,
		Message: req.Message,
	})
	if err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}

	if h.notifier != nil {
		h.notifier.Notify(inquiry)
	}

	c.JSON(http.StatusCreated, InquiryResponse{
		Inquiry:      inquiry,
		WhatsAppLink: core.WhatsAppLink(h.whatsAppLink, core.ContactLinkText(inquiry.Name, inquiry.Theme)),
	})
}

// SubmitReview handles POST /reviews. The review is published as a testimonial right away.
func (h *SubmissionHandler) SubmitReview(c *gin.Context) {
	var req models.ReviewRequest
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
