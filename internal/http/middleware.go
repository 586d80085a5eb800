package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"budget-tracker/internal/auth"
)

const userIDKey = "userID"

// authRequired validates the bearer token and stores the caller's user id in
// the request context. The user id is never taken from the request body.
func authRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abortUnauthenticated(c)
			return
		}

		userID, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
