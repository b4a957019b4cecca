package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "doblink/internal/errors"
)

// PipelineAuthMiddleware guards deployment endpoints with the X-API-Key
// header. An empty apiKey disables those endpoints entirely.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrPipelineNotConfigured)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
