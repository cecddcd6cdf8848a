// Package response renders API error bodies. Every failure is a JSON object
// with a single "error" field.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkroom/server/internal/model"
)

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, model.ErrorResponse{Error: message})
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError sends a 500 Internal Server Error response.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal error"
	}
	Error(c, http.StatusInternalServerError, message)
}

// ErrorMapping maps domain errors to HTTP status codes.
type ErrorMapping struct {
	Err     error
	Status  int
	Message string
}

// HandleError handles an error using the provided mappings.
// Returns true if the error was handled, false otherwise.
func HandleError(c *gin.Context, err error, mappings []ErrorMapping) bool {
	for _, m := range mappings {
		if errors.Is(err, m.Err) {
			msg := m.Message
			if msg == "" {
				msg = m.Err.Error()
			}
			Error(c, m.Status, msg)
			return true
		}
	}
	return false
}

// HandleErrorWithDefault handles an error using the provided mappings and
// renders unmapped errors as a 500 with fallback as the message.
func HandleErrorWithDefault(c *gin.Context, err error, mappings []ErrorMapping, fallback string) {
	if !HandleError(c, err, mappings) {
		InternalError(c, fallback)
	}
}
