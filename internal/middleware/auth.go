package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoply/shoply-golang/internal/auth"
)

// authErrorBody is the one response every authentication failure gets.
// Missing header and bad token look identical on purpose.
const authErrorBody = "Please authenticate using a valid token."

// AuthRequired gates the cart endpoints. It reads the token from the
// 'auth-token' header, verifies it, and puts the resolved user id on the
// request context as "userID".
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("auth-token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"errors": authErrorBody})
			c.Abort()
			return
		}

		userID, err := tokens.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"errors": authErrorBody})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
