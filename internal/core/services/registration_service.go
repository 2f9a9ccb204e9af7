package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
)

// registrationService implements the RegistrationSvcFacade interface
type registrationService struct {
	BaseService
	userRepo         portsrepo.UserRepository
	moduleRepo       portsrepo.ModuleRepository
	organizationRepo portsrepo.OrganizationRepository
	registrationRepo portsrepo.RegistrationRepository
}

// NewRegistrationService creates a new registration service with the provided dependencies
func NewRegistrationService(
	userRepo portsrepo.UserRepository,
	moduleRepo portsrepo.ModuleRepository,
	organizationRepo portsrepo.OrganizationRepository,
	registrationRepo portsrepo.RegistrationRepository,
) portssvc.RegistrationSvcFacade {
	return &registrationService{
		userRepo:         userRepo,
		moduleRepo:       moduleRepo,
		organizationRepo: organizationRepo,
		registrationRepo: registrationRepo,
	}
}

// Ensure registrationService implements the RegistrationSvcFacade interface
var _ portssvc.RegistrationSvcFacade = (*registrationService)(nil)

// ProcessCompletedCheckout materializes Organization, admin User, Subscription
// and the initial module grants for a completed checkout, exactly once per
// admin email. Both the webhook and the client fallback path call this routine,
// so it must stay safe under redelivery and under concurrent invocation.
func (s *registrationService) ProcessCompletedCheckout(ctx context.Context, session domain.CheckoutSession) (*domain.User, *domain.Organization, error) {
	signup := session.Signup
	if signup.Email == "" || signup.OrganizationName == "" || signup.PasswordHash == "" {
		s.LogWarn(ctx, "Checkout session missing required signup metadata",
			slog.String("session_id", session.SessionID))
		return nil, nil, apperrors.ErrValidation
	}

	// Idempotency check: a user for this email means the signup was already
	// reconciled, by an earlier delivery or by the other delivery path.
	existing, err := s.userRepo.FindUserByEmail(ctx, signup.Email)
	if err == nil {
		s.LogInfo(ctx, "Checkout already reconciled",
			slog.String("session_id", session.SessionID),
			slog.String("user_id", existing.UserID))
		return s.withOrganization(ctx, existing)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by email during reconciliation")
		return nil, nil, err
	}

	// Names absent from the persisted catalog contribute no grant and no price.
	modules, err := s.moduleRepo.FindModulesByNames(ctx, signup.SelectedModuleNames)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve selected modules")
		return nil, nil, err
	}
	if len(modules) < len(signup.SelectedModuleNames) {
		s.LogWarn(ctx, "Dropping unknown module names from checkout",
			slog.Int("selected", len(signup.SelectedModuleNames)),
			slog.Int("resolved", len(modules)))
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           signup.OrganizationName,
		CreatedAt:      now,
	}
	user := domain.User{
		UserID:         uuid.NewString(),
		Email:          signup.Email,
		PasswordHash:   signup.PasswordHash,
		FirstName:      signup.FirstName,
		LastName:       signup.LastName,
		Role:           domain.RoleAdmin,
		OrganizationID: org.OrganizationID,
		CreatedAt:      now,
	}
	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		OrganizationID: org.OrganizationID,
		Status:         domain.SubscriptionActive,
		StartDate:      now,
		MonthlyPrice:   signup.TotalPrice,
		CreatedAt:      now,
	}
	if session.SubscriptionRef != "" {
		ref := session.SubscriptionRef
		sub.ExternalSubscriptionRef = &ref
	}
	if session.CustomerRef != "" {
		ref := session.CustomerRef
		sub.ExternalCustomerRef = &ref
	}
	grants := make([]domain.SubscriptionModule, 0, len(modules))
	for _, m := range modules {
		grants = append(grants, domain.SubscriptionModule{
			SubscriptionID: sub.SubscriptionID,
			ModuleID:       m.ModuleID,
			ModuleName:     m.Name,
			AddedAt:        now,
		})
	}

	err = s.registrationRepo.CreateSignup(ctx, org, user, sub, grants)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent reconciliation for the same email won the race. The
			// store's unique email constraint guarantees their rows are
			// complete, so re-fetch and report success.
			s.LogInfo(ctx, "Concurrent reconciliation detected, reusing existing account",
				slog.String("session_id", session.SessionID))
			winner, ferr := s.userRepo.FindUserByEmail(ctx, signup.Email)
			if ferr != nil {
				s.LogError(ctx, ferr, "Failed to re-fetch user after duplicate signup")
				return nil, nil, ferr
			}
			return s.withOrganization(ctx, winner)
		}
		s.LogError(ctx, err, "Failed to persist signup",
			slog.String("session_id", session.SessionID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Checkout reconciled",
		slog.String("session_id", session.SessionID),
		slog.String("organization_id", org.OrganizationID),
		slog.String("user_id", user.UserID),
		slog.Int("modules", len(grants)))
	return &user, &org, nil
}

func (s *registrationService) withOrganization(ctx context.Context, user *domain.User) (*domain.User, *domain.Organization, error) {
	org, err := s.organizationRepo.FindOrganizationByID(ctx, user.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load organization for user",
			slog.String("user_id", user.UserID))
		return nil, nil, err
	}
	return user, org, nil
}
