package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider creates all pgsql repositories over the shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ModuleRepo:       NewModuleRepository(db),
		OrganizationRepo: NewOrganizationRepository(db),
		UserRepo:         NewUserRepository(db),
		SubscriptionRepo: NewSubscriptionRepository(db),
		RegistrationRepo: NewRegistrationRepository(db),
	}
}
