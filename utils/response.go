// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError aborts the request with a generic operation-named message.
// Underlying errors are logged at the call site, never surfaced to clients.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondWithFieldErrors returns the form error-state contract: a field to
// messages map plus a top-level message.
func RespondWithFieldErrors(c *gin.Context, code int, errs FieldErrors, message string) {
	c.AbortWithStatusJSON(code, gin.H{
		"errors":  errs,
		"message": message,
	})
}
