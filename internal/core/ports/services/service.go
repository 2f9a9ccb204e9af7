package services

// ServiceContainer holds all service facades for injection into handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Entitlement  EntitlementSvcFacade
	Registration RegistrationSvcFacade
	Subscription SubscriptionSvcFacade
	Checkout     CheckoutSvcFacade
}
