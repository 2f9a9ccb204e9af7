package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
)

// entitlementService implements the EntitlementSvcFacade interface
type entitlementService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepository
}

// NewEntitlementService creates a new entitlement service with the provided dependencies
func NewEntitlementService(subscriptionRepo portsrepo.SubscriptionRepository) portssvc.EntitlementSvcFacade {
	return &entitlementService{
		subscriptionRepo: subscriptionRepo,
	}
}

// Ensure entitlementService implements the EntitlementSvcFacade interface
var _ portssvc.EntitlementSvcFacade = (*entitlementService)(nil)

// CheckAuthenticated verifies that an identity was resolved and that it belongs
// to an organization. It performs no subscription lookup.
func (s *entitlementService) CheckAuthenticated(ctx context.Context, authUser *domain.AuthUser) error {
	if authUser == nil || authUser.UserID == "" || authUser.OrganizationID == "" {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// CheckModuleAccess decides whether the identity's organization may use the
// named module. The subscription and its grants are read in one query on every
// call, so grant edits take effect on the next request.
func (s *entitlementService) CheckModuleAccess(ctx context.Context, authUser *domain.AuthUser, moduleName string) error {
	if err := s.CheckAuthenticated(ctx, authUser); err != nil {
		return err
	}

	sub, err := s.subscriptionRepo.FindSubscriptionWithModulesByOrganizationID(ctx, authUser.OrganizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No subscription for organization",
				slog.String("organization_id", authUser.OrganizationID))
			return apperrors.ErrSubscriptionInactive
		}
		s.LogError(ctx, err, "Failed to load subscription for entitlement check",
			slog.String("organization_id", authUser.OrganizationID))
		return err
	}

	if sub.Status != domain.SubscriptionActive {
		s.LogDebug(ctx, "Subscription not active",
			slog.String("organization_id", authUser.OrganizationID),
			slog.String("status", string(sub.Status)))
		return apperrors.ErrSubscriptionInactive
	}

	if !sub.HasModule(moduleName) {
		s.LogDebug(ctx, "Module not granted to subscription",
			slog.String("organization_id", authUser.OrganizationID),
			slog.String("module", moduleName))
		return apperrors.ModuleNotActiveError{Module: moduleName}
	}

	return nil
}
