package repositories

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// SubscriptionRepository defines persistence operations for subscriptions and
// their module grants.
type SubscriptionRepository interface {
	FindSubscriptionByOrganizationID(ctx context.Context, organizationID string) (*domain.Subscription, error)
	// FindSubscriptionWithModulesByOrganizationID loads the subscription and its
	// grants (with module names resolved) in one consistent read.
	FindSubscriptionWithModulesByOrganizationID(ctx context.Context, organizationID string) (*domain.SubscriptionWithModules, error)
	// ListModulesForSubscription returns the full catalog rows granted to the subscription.
	ListModulesForSubscription(ctx context.Context, subscriptionID string) ([]domain.Module, error)
	// AddSubscriptionModule creates a grant. A grant that already exists
	// surfaces apperrors.ErrDuplicate.
	AddSubscriptionModule(ctx context.Context, grant domain.SubscriptionModule) error
	// RemoveSubscriptionModule deletes the matching grant and returns the number
	// of rows removed. Removing an absent grant is not an error.
	RemoveSubscriptionModule(ctx context.Context, subscriptionID, moduleID string) (int64, error)
}
