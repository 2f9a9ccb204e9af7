package services

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// SubscriptionSvcFacade edits and reads module grants for an existing
// subscription.
type SubscriptionSvcFacade interface {
	// AddModule grants the named module to the organization's subscription.
	// Unknown module or missing subscription -> apperrors.ErrNotFound; an
	// existing grant -> apperrors.ErrDuplicate.
	AddModule(ctx context.Context, organizationID, moduleName string) (*domain.Module, error)
	// RemoveModule deletes the grant for the given module id. Removal is
	// idempotent: deleting an absent grant succeeds.
	RemoveModule(ctx context.Context, organizationID, moduleID string) error
	// ListOrganizationModules returns the modules currently granted to the
	// organization. An organization without a subscription has none.
	ListOrganizationModules(ctx context.Context, organizationID string) ([]domain.Module, error)
	// ListCatalog returns every purchasable module in the persisted catalog.
	ListCatalog(ctx context.Context) ([]domain.Module, error)
}
