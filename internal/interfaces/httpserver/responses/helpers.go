package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainsession "github.com/joycehq/joyce/internal/domain/session"
	"github.com/joycehq/joyce/internal/infrastructure/store"
)

// HandleError maps domain and store errors to typed HTTP error responses.
func HandleError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domainsession.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: &ErrorDetail{
				Message: "LiveKit credentials not configured. Please set LIVEKIT_API_KEY and LIVEKIT_API_SECRET environment variables.",
				Type:    "configuration_error",
			},
		})
	case errors.Is(err, store.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: &ErrorDetail{Message: message, Type: "not_found_error"},
		})
	case errors.Is(err, store.ErrSessionAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: &ErrorDetail{Message: message, Type: "conflict_error"},
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: &ErrorDetail{Message: message, Type: "internal_error"},
		})
	}
}

// HandleValidationError writes a 400 Bad Request response.
func HandleValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: &ErrorDetail{Message: message, Type: "validation_error"},
	})
}
