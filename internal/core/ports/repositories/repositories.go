package repositories

// RepositoryProvider bundles all repository implementations for service wiring.
type RepositoryProvider struct {
	ModuleRepo       ModuleRepository
	OrganizationRepo OrganizationRepository
	UserRepo         UserRepository
	SubscriptionRepo SubscriptionRepository
	RegistrationRepo RegistrationRepository
}
