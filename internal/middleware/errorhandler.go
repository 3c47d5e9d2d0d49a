package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnlunar/amlich/internal/domain/dto"
	"github.com/vnlunar/amlich/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a standardized JSON error response.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If handlers attached errors and no response was written yet,
//     responds with 500 and the last error's message.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request error")

	if c.Writer.Written() {
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
}

// AbortWithError writes a standardized error response with the given
// status and stops the handler chain.
//
// Parameters:
//   - c (*gin.Context): Request context.
//   - status (int): HTTP status code to return.
//   - message (string): Human-readable message for the response body.
//   - err (error): Optional underlying error included as detail.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
