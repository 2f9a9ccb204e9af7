package repositories

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// RegistrationRepository persists a completed signup. Creating the organization,
// its admin user, the subscription and the initial grants is one atomic unit:
// either all rows commit or none do.
type RegistrationRepository interface {
	// CreateSignup returns apperrors.ErrDuplicate when the user email already
	// exists (a concurrent reconciliation won the race). No partial state is
	// left behind in that case.
	CreateSignup(ctx context.Context, org domain.Organization, user domain.User, sub domain.Subscription, grants []domain.SubscriptionModule) error
}
