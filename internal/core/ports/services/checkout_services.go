package services

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// CheckoutSvcFacade starts checkout sessions and serves the client fallback
// path after the provider redirects back.
type CheckoutSvcFacade interface {
	// StartCheckout hashes the password, attaches the signup metadata to a new
	// provider session and returns the hosted payment page.
	StartCheckout(ctx context.Context, intent domain.CheckoutIntent) (*domain.CheckoutRedirect, error)
	// LookupSessionUser returns the user materialized for the given session,
	// reconciling on the spot when the payment is confirmed but the webhook has
	// not landed yet. apperrors.ErrNotFound when the session is not paid.
	LookupSessionUser(ctx context.Context, sessionID string) (*domain.User, *domain.Organization, error)
}

// CheckoutGateway is the boundary to the external payment provider. The
// concrete adapter owns redirect URLs, session construction and webhook
// signature verification.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, signup domain.SignupMetadata) (*domain.CheckoutRedirect, error)
	GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
	// ConstructEvent verifies the payload signature and decodes the event.
	// A bad signature surfaces apperrors.ErrSignatureVerification.
	ConstructEvent(payload []byte, signatureHeader string) (*domain.CheckoutEvent, error)
}
