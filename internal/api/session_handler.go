package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/core"
	"github.com/starterkart/starterkart-backend/internal/models"
)

// SessionHandler toggles the administrator display gate.
type SessionHandler struct {
	session       core.SessionService
	adminEmail    string
	adminPassword string
	logger        *zap.Logger
}

// NewSessionHandler creates a new SessionHandler that accepts the given credential pair.
func NewSessionHandler(session core.SessionService, adminEmail, adminPassword string, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{session: session, adminEmail: adminEmail, adminPassword: adminPassword, logger: logger}
}

// Login handles POST /session/login
func (h *SessionHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := bindRequest(c, &req); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}

	if err := core.CheckCredentials(req.Email, req.Password, h.adminEmail, h.adminPassword); err != nil {
		h.logger.Warn("Rejected admin login", zap.String("client_ip", c.ClientIP()))
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	if err := h.session.Login(c.Request.Context()); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	h.logger.Warn("Admin session started; admin routes are open to every client until logout",
		zap.String("client_ip", c.ClientIP()))
	c.JSON(http.StatusOK, SessionResponse{Admin: true})
}

// Logout handles POST /session/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.session.Logout(c.Request.Context()); err != nil {
		mapContentErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{Admin: false})
}

// Status handles GET /session
func (h *SessionHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, SessionResponse{Admin: h.session.IsAdmin()})
}
