package middleware

import (
	"net/http"
	"strings"

	"podio/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by SessionMiddleware for downstream handlers.
const (
	ContextSessionID = "sessionID"
	ContextEventID   = "eventID"
)

// SessionMiddleware validates the Bearer session token and injects the
// session ID and event ID into the request context. Flow routes cannot run
// without a session.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		sessionID, eventID, err := utils.SessionFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session token"})
			return
		}

		c.Set(ContextSessionID, sessionID)
		c.Set(ContextEventID, eventID)
		c.Next()
	}
}
