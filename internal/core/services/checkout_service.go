package services

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
)

// checkoutService implements the CheckoutSvcFacade interface
type checkoutService struct {
	BaseService
	gateway          portssvc.CheckoutGateway
	registration     portssvc.RegistrationSvcFacade
	userRepo         portsrepo.UserRepository
	organizationRepo portsrepo.OrganizationRepository
}

// NewCheckoutService creates a new checkout service with the provided dependencies
func NewCheckoutService(
	gateway portssvc.CheckoutGateway,
	registration portssvc.RegistrationSvcFacade,
	userRepo portsrepo.UserRepository,
	organizationRepo portsrepo.OrganizationRepository,
) portssvc.CheckoutSvcFacade {
	return &checkoutService{
		gateway:          gateway,
		registration:     registration,
		userRepo:         userRepo,
		organizationRepo: organizationRepo,
	}
}

// Ensure checkoutService implements the CheckoutSvcFacade interface
var _ portssvc.CheckoutSvcFacade = (*checkoutService)(nil)

// StartCheckout turns a prospective signup into a provider checkout session.
// The signup metadata rides along on the session: it is the sole input to
// reconciliation once payment completes. The password is hashed here, before
// anything leaves the process.
func (s *checkoutService) StartCheckout(ctx context.Context, intent domain.CheckoutIntent) (*domain.CheckoutRedirect, error) {
	if intent.Email == "" || intent.Password == "" || intent.OrganizationName == "" {
		return nil, apperrors.ErrValidation
	}
	if existing, err := s.userRepo.FindUserByEmail(ctx, intent.Email); err == nil && existing != nil {
		s.LogWarn(ctx, "Checkout attempted for an already registered email")
		return nil, apperrors.ErrDuplicate
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(intent.Password), bcrypt.DefaultCost)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password for checkout")
		return nil, err
	}

	signup := domain.SignupMetadata{
		OrganizationName:    intent.OrganizationName,
		Email:               intent.Email,
		PasswordHash:        string(hash),
		FirstName:           intent.FirstName,
		LastName:            intent.LastName,
		SelectedModuleNames: intent.SelectedModuleNames,
		TotalPrice:          intent.TotalPrice,
	}

	redirect, err := s.gateway.CreateSession(ctx, signup)
	if err != nil {
		s.LogError(ctx, err, "Failed to create checkout session")
		return nil, err
	}

	s.LogInfo(ctx, "Checkout session created",
		slog.String("session_id", redirect.SessionID),
		slog.Int("modules", len(intent.SelectedModuleNames)))
	return redirect, nil
}

// LookupSessionUser serves the client fallback path after the provider
// redirects back. When the webhook already landed, the user exists and is
// returned as-is. When payment is confirmed but no user exists yet (delayed or
// lost webhook), reconciliation runs here through the same idempotent routine.
func (s *checkoutService) LookupSessionUser(ctx context.Context, sessionID string) (*domain.User, *domain.Organization, error) {
	session, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve checkout session",
			slog.String("session_id", sessionID))
		return nil, nil, err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, session.Signup.Email)
	if err == nil {
		org, oerr := s.organizationRepo.FindOrganizationByID(ctx, user.OrganizationID)
		if oerr != nil {
			return nil, nil, oerr
		}
		return user, org, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, err
	}

	if !session.Paid() {
		s.LogDebug(ctx, "Session not paid yet, no user to return",
			slog.String("session_id", sessionID),
			slog.String("payment_status", session.PaymentStatus))
		return nil, nil, apperrors.ErrNotFound
	}

	s.LogInfo(ctx, "User not found for paid session, reconciling via fallback path",
		slog.String("session_id", sessionID))
	return s.registration.ProcessCompletedCheckout(ctx, *session)
}
