package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recruitment-portal-backend/internal/delivery/http/response"
	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
	"recruitment-portal-backend/pkg/token"
)

// AuthMiddleware verifies the caller's token and binds the asserted identity
// to the request context. The claims are only an assertion: the services
// re-check them against the account store before acting on them.
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", apperror.KindAuthorization)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", apperror.KindAuthorization)
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), domain.KeyPersonID, claims.PersonID)
		ctx = context.WithValue(ctx, domain.KeyUsername, claims.Username)
		ctx = context.WithValue(ctx, domain.KeyUserRole, claims.RoleID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
