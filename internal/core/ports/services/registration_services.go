package services

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// RegistrationSvcFacade turns a completed checkout into durable entitlement
// state. The operation is idempotent per admin email: webhook redelivery and
// the client fallback path may both invoke it for the same signup.
type RegistrationSvcFacade interface {
	ProcessCompletedCheckout(ctx context.Context, session domain.CheckoutSession) (*domain.User, *domain.Organization, error)
}
