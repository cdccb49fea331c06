package middleware

import (
	"errors"
	"net/http"
	"strings"

	"footballclub/models"
	"footballclub/services"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireRole rejects requests whose bearer token is missing or invalid
// (401) or whose role is not in roles (403). With no roles any
// authenticated caller is let through. The resolved identity is stored on
// the context for handlers.
func RequireRole(authService *services.AuthService, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := authService.Authenticate(bearerToken(c), roles...)
		if err != nil {
			_ = c.Error(err)
			if errors.Is(err, services.ErrForbidden) {
				c.Set(identityKey, identity)
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": err.Error()})
				return
			}
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": services.ErrUnauthenticated.Error()})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the caller stored by RequireRole.
func CurrentIdentity(c *gin.Context) (*models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*models.Identity)
	return identity, ok && identity != nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
