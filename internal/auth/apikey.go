// Package auth guards mutating routes with a shared-secret API key.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderAPIKey is the request header carrying the shared secret.
const HeaderAPIKey = "X-API-Key"

// RequireAPIKey returns a Gin middleware that rejects requests whose
// X-API-Key header does not match the configured secret. A missing header
// is a 401, a wrong key a 403; either way the request is aborted before
// any handler or store access runs. The comparison is constant-time.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(HeaderAPIKey)
		if supplied == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing API key",
				"code":  "unauthorized",
			})
			return
		}
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "invalid API key",
				"code":  "forbidden",
			})
			return
		}
		c.Next()
	}
}
