package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
)

// subscriptionService implements the SubscriptionSvcFacade interface
type subscriptionService struct {
	BaseService
	moduleRepo       portsrepo.ModuleRepository
	subscriptionRepo portsrepo.SubscriptionRepository
}

// NewSubscriptionService creates a new subscription service with the provided dependencies
func NewSubscriptionService(
	moduleRepo portsrepo.ModuleRepository,
	subscriptionRepo portsrepo.SubscriptionRepository,
) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{
		moduleRepo:       moduleRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Ensure subscriptionService implements the SubscriptionSvcFacade interface
var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

// AddModule grants the named module to the organization's subscription. The
// module must exist in the persisted catalog and the grant must not already
// exist; the new entitlement is visible to the guard immediately.
func (s *subscriptionService) AddModule(ctx context.Context, organizationID, moduleName string) (*domain.Module, error) {
	module, err := s.moduleRepo.FindModuleByName(ctx, moduleName)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find module by name", slog.String("module", moduleName))
		}
		return nil, err
	}

	sub, err := s.subscriptionRepo.FindSubscriptionByOrganizationID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find subscription",
				slog.String("organization_id", organizationID))
		}
		return nil, err
	}

	grant := domain.SubscriptionModule{
		SubscriptionID: sub.SubscriptionID,
		ModuleID:       module.ModuleID,
		ModuleName:     module.Name,
		AddedAt:        time.Now(),
	}
	if err := s.subscriptionRepo.AddSubscriptionModule(ctx, grant); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to add module grant",
				slog.String("organization_id", organizationID),
				slog.String("module", moduleName))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Module added to subscription",
		slog.String("organization_id", organizationID),
		slog.String("module", moduleName))
	return module, nil
}

// RemoveModule deletes the grant for the given module id. Removal is
// destructive and idempotent: no historical record is kept, and deleting an
// absent grant succeeds.
func (s *subscriptionService) RemoveModule(ctx context.Context, organizationID, moduleID string) error {
	sub, err := s.subscriptionRepo.FindSubscriptionByOrganizationID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find subscription",
				slog.String("organization_id", organizationID))
		}
		return err
	}

	removed, err := s.subscriptionRepo.RemoveSubscriptionModule(ctx, sub.SubscriptionID, moduleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to remove module grant",
			slog.String("organization_id", organizationID),
			slog.String("module_id", moduleID))
		return err
	}
	if removed == 0 {
		s.LogDebug(ctx, "No grant to remove",
			slog.String("organization_id", organizationID),
			slog.String("module_id", moduleID))
		return nil
	}

	s.LogInfo(ctx, "Module removed from subscription",
		slog.String("organization_id", organizationID),
		slog.String("module_id", moduleID))
	return nil
}

// ListOrganizationModules returns the catalog rows granted to the
// organization's subscription.
func (s *subscriptionService) ListOrganizationModules(ctx context.Context, organizationID string) ([]domain.Module, error) {
	sub, err := s.subscriptionRepo.FindSubscriptionByOrganizationID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Module{}, nil
		}
		s.LogError(ctx, err, "Failed to find subscription",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	modules, err := s.subscriptionRepo.ListModulesForSubscription(ctx, sub.SubscriptionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subscription modules",
			slog.String("subscription_id", sub.SubscriptionID))
		return nil, err
	}
	if modules == nil {
		modules = []domain.Module{}
	}
	return modules, nil
}

// ListCatalog returns the full persisted module catalog for the account-setup
// UI.
func (s *subscriptionService) ListCatalog(ctx context.Context) ([]domain.Module, error) {
	modules, err := s.moduleRepo.ListModules(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list module catalog")
		return nil, err
	}
	return modules, nil
}
