package services

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// UserSvcFacade exposes user lookup and profile edits. Account creation is
// exclusively the registration service's job.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// GetUserWithOrganization loads the user together with its organization.
	GetUserWithOrganization(ctx context.Context, userID string) (*domain.User, *domain.Organization, error)
	// Authenticate verifies email+password credentials and returns the user.
	// Bad credentials surface apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, firstName, lastName string) error
}
