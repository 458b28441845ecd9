package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/dto"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that gracefully recovers from any
// panics, logs the stack trace for debugging, and returns a standardized JSON
// error response.
//
// The stack trace goes to the log only; the response body carries a generic
// message. No internal detail or credential can leak through this path.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// Log the panic and stack trace
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				// Respond with standardized error structure
				errResponse := dto.NewErrorResponse("Internal server error", "an unexpected error occurred", nil)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errResponse)
			}
		}()

		c.Next()
	}
}

// ErrorHandler converts errors attached to the Gin context (via c.Error) that
// no handler turned into a response into a generic 500 JSON body.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	logger.L().Error().
		Str("path", c.Request.URL.Path).
		Err(c.Errors.Last().Err).
		Msg("unhandled request error")

	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewErrorResponse("Internal server error", "an unexpected error occurred", c.Errors.Last().Err))
}
