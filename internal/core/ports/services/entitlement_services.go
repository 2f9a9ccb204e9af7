package services

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// EntitlementSvcFacade is the access-control check run before serving
// module-scoped requests. It must be consulted on every gated request; grants
// are never cached, so mutations take effect immediately.
type EntitlementSvcFacade interface {
	// CheckModuleAccess returns nil when the identity's organization holds an
	// active subscription including the named module. Denials are reported as
	// apperrors.ErrUnauthorized, apperrors.ErrSubscriptionInactive or
	// apperrors.ModuleNotActiveError.
	CheckModuleAccess(ctx context.Context, authUser *domain.AuthUser, moduleName string) error
	// CheckAuthenticated only verifies the identity and its organization
	// association, for org-scoped routes that are not module-gated.
	CheckAuthenticated(ctx context.Context, authUser *domain.AuthUser) error
}
