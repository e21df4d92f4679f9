package middleware

import (
	"net/http"
	"strings"

	"claimsportal/internal/domain"
	"claimsportal/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// JWTAuth validates the Authorization bearer token and stores the
// resulting employee session in the gin context.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(sessionKey, domain.Session{
			EmployeeID: claims.EmployeeID,
			Email:      claims.Email,
		})

		c.Next()
	}
}

// SessionFrom returns the employee session placed in the context by
// JWTAuth. The second return is false on unauthenticated requests.
func SessionFrom(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	session, ok := v.(domain.Session)
	return session, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
