package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// authUserKey is the key used to store the resolved identity in the request
// context. Using a custom type prevents collisions.
const authUserKey = contextKey("authUser")

// withAuthUser stores the resolved identity in a standard context.
func withAuthUser(ctx context.Context, authUser *domain.AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, authUser)
}

// GetAuthUserFromContext retrieves the resolved identity from the Gin context.
// It returns the identity and a boolean indicating if it was found.
func GetAuthUserFromContext(c *gin.Context) (*domain.AuthUser, bool) {
	authUser, ok := c.Request.Context().Value(authUserKey).(*domain.AuthUser)
	if !ok || authUser == nil {
		return nil, false
	}
	return authUser, true
}
