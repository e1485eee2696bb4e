package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "team-mentorship.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors keep their own status and
// message; bare sentinel errors are mapped through StatusCode; anything
// else becomes a 500 without leaking the underlying error text.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.NewAppError(domainerrors.StatusCode(err), err.Error(), err)
	}
	if appErr.Code == http.StatusInternalServerError {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ErrorWithStatus sends an error response with an explicit status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}
