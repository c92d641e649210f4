package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire contract is deliberately flat: success payloads are the raw
// domain objects, failures are {"detail": <msg>} and informational results
// {"message": <msg>}.

// Detail writes a failure body.
func Detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// Message writes an informational success body.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Unauthenticated aborts with the single authentication-failure shape. Every
// auth failure collapses to this response so callers cannot probe whether a
// token was absent, malformed or expired.
func Unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication failed"})
}

// StoreError writes the generic shape for unclassified backing-store
// failures; no store detail leaks to the caller.
func StoreError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}

// ValidationFailed writes a 400 with per-field binding errors.
func ValidationFailed(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid payload", "errors": details})
}
