package middleware

import "github.com/gin-gonic/gin"

// RejectFunc writes the response for a request a middleware refuses.
// The middleware aborts the chain after it returns.
type RejectFunc func(c *gin.Context, status int, message string)

// JSONReject answers with {"error": message}
func JSONReject(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
