package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/core"
	"github.com/starterkart/starterkart-backend/internal/middleware"
)

var errInvalidPayload = errors.New("invalid request payload")

// bindRequest decodes the JSON body into req and runs its binding rules.
func bindRequest(c *gin.Context, req any) error {
	registerValidators()
	if err := c.ShouldBindJSON(req); err != nil {
		return fmt.Errorf("%w: %w", errInvalidPayload, err)
	}
	return nil
}

// mapContentErrorToStatus maps errors from the core services to HTTP status codes and ErrorResponse.
func mapContentErrorToStatus(c *gin.Context, logger *zap.Logger, err error) {
	var statusCode int
	var errResponse ErrorResponse
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrors):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: "Missing required fields", Details: strings.Join(invalidFields(validationErrors), ", ")}
	case errors.Is(err, errInvalidPayload):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: "Invalid request payload", Details: err.Error()}
	case errors.Is(err, core.ErrResetNotConfirmed):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrResetNotConfirmed.Error(), Details: `Send {"confirm": true}`}
	case errors.Is(err, core.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		errResponse = ErrorResponse{Error: core.ErrInvalidCredentials.Error()}
	case errors.Is(err, core.ErrNotReady):
		statusCode = http.StatusServiceUnavailable
		errResponse = ErrorResponse{Error: core.ErrNotReady.Error()}
	case errors.Is(err, core.ErrPersist):
		logger.Error("Change applied in memory but not persisted",
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())), zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "The change was applied but could not be saved"}
	default:
		logger.Error("Internal Server Error",
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())), zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}
