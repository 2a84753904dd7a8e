package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clubsync/events-backend/internal/model"
	"github.com/clubsync/events-backend/internal/response"
	"github.com/clubsync/events-backend/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for JWT claims.
	ContextKeyClaims = "claims"
)

var errNoBearerToken = errors.New("authorization bearer token required")

// RequireAdminJWT validates a bearer token from the Authorization header
// and requires the admin role. A missing or invalid token is 401; a valid
// token with the user role is 403 with the route's denial message.
func RequireAdminJWT(authService *service.AuthService, denyMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractAndValidateClaims(c, authService)
		if err != nil {
			if errors.Is(err, errNoBearerToken) {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			} else {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			}
			return
		}

		if claims.Role != model.RoleAdmin {
			response.AbortFailMessage(c, http.StatusForbidden, response.ErrAdminAccessOnly, denyMessage)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractAndValidateClaims(c *gin.Context, authService *service.AuthService) (*service.Claims, error) {
	tokenStr := ""

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			tokenStr = parts[1]
		}
	}

	if tokenStr == "" {
		return nil, errNoBearerToken
	}

	return authService.ValidateToken(tokenStr)
}
