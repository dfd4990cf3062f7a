package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodySize caps JSON request bodies
const DefaultMaxBodySize int64 = 64 << 10

// BodySizeLimitMiddleware limits the size of request bodies. Reads past the
// limit fail, which surfaces as a binding error in the handler.
func BodySizeLimitMiddleware(maxBodySize int64) gin.HandlerFunc {
	return BodySizeLimitMiddlewareWithReject(maxBodySize, JSONReject)
}

// BodySizeLimitMiddlewareWithReject is BodySizeLimitMiddleware with a custom
// response for bodies declared larger than the limit
func BodySizeLimitMiddlewareWithReject(maxBodySize int64, reject RejectFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBodySize {
			reject(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
		c.Next()
	}
}
