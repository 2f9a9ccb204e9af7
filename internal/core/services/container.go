package services

import (
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, gateway portssvc.CheckoutGateway) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.OrganizationRepo)
	container.Entitlement = NewEntitlementService(repos.SubscriptionRepo)
	container.Subscription = NewSubscriptionService(repos.ModuleRepo, repos.SubscriptionRepo)

	// Registration first: checkout's fallback path reconciles through it.
	container.Registration = NewRegistrationService(
		repos.UserRepo,
		repos.ModuleRepo,
		repos.OrganizationRepo,
		repos.RegistrationRepo,
	)
	container.Checkout = NewCheckoutService(
		gateway,
		container.Registration,
		repos.UserRepo,
		repos.OrganizationRepo,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EntitlementSvcFacade  = (*entitlementService)(nil)
	_ portssvc.RegistrationSvcFacade = (*registrationService)(nil)
	_ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)
	_ portssvc.CheckoutSvcFacade     = (*checkoutService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
)
