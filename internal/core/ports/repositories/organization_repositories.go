package repositories

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// OrganizationRepository defines persistence operations for organizations.
// Creation happens only through RegistrationRepository.CreateSignup.
type OrganizationRepository interface {
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}
