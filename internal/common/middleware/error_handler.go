package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"community-portal-backend/internal/common/errors"
	"community-portal-backend/internal/common/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope returned for recovered panics.
type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
}

// ErrorHandler recovers panics, logs them with the request context and
// returns a generic internal error without leaking detail to the caller.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString("request_id")

		logger.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprintf("%v", recovered)).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "Internal server error")

		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Success:   false,
			Error:     appErr,
			Timestamp: time.Now(),
		})
	})
}
