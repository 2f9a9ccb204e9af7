package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
)

// RequireModule creates a Gin middleware that denies the request unless the
// caller's organization holds an active subscription including the named
// module. It runs the entitlement check on every request; there is no cached
// grant state, so mutations apply immediately.
func RequireModule(entitlementSvc portssvc.EntitlementSvcFacade, moduleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authUser, _ := GetAuthUserFromContext(c)

		err := entitlementSvc.CheckModuleAccess(c.Request.Context(), authUser, moduleName)
		if err == nil {
			c.Next()
			return
		}

		status, message := entitlementDenial(err)
		GetLoggerFromCtx(c.Request.Context()).Warn("Module access denied",
			"module", moduleName, "reason", err.Error())
		c.AbortWithStatusJSON(status, gin.H{"error": message})
	}
}

// RequireAuthenticated creates a Gin middleware for org-scoped routes that are
// not gated on a specific module.
func RequireAuthenticated(entitlementSvc portssvc.EntitlementSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		authUser, _ := GetAuthUserFromContext(c)
		if err := entitlementSvc.CheckAuthenticated(c.Request.Context(), authUser); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// entitlementDenial maps guard errors to their HTTP representation:
// Unauthenticated -> 401, inactive subscription -> 403, missing module -> 403
// with the module name in the message.
func entitlementDenial(err error) (int, string) {
	var notActive apperrors.ModuleNotActiveError
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrSubscriptionInactive):
		return http.StatusForbidden, "Subscription inactive"
	case errors.As(err, &notActive):
		return http.StatusForbidden, notActive.Error()
	default:
		return http.StatusInternalServerError, "Failed to check module access"
	}
}
