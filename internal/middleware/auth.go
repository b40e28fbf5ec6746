package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BearerAuth rejects requests whose Authorization header is not "Bearer <secret>".
// An empty secret rejects every request.
func BearerAuth(secret string, logger *zap.SugaredLogger) gin.HandlerFunc {
	expected := []byte("Bearer " + secret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if secret == "" || !strings.HasPrefix(header, "Bearer ") ||
			subtle.ConstantTimeCompare([]byte(header), expected) != 1 {
			logger.Warnw("Unauthorized request",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
				"request_id", GetRequestID(c),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Unauthorized",
				},
			})
			return
		}
		c.Next()
	}
}
