package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware sets the common hardening headers.
// cacheControl is applied as-is; pass "" to leave caching to the handler.
func SecurityHeadersMiddleware(cacheControl string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), interest-cohort=()")
		c.Header("X-Permitted-Cross-Domain-Policies", "none")

		if cacheControl != "" {
			c.Header("Cache-Control", cacheControl)
		}

		c.Next()
	}
}

// APICacheControl keeps lead data out of shared caches
const APICacheControl = "no-store, no-cache, must-revalidate, private"
