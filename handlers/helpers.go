package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user id the JWT middleware stored.
// Returns "" after writing the error response when it is missing.
func currentUserID(c *gin.Context) string {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return ""
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type"})
		return ""
	}
	return idStr
}
