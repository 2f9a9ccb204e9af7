package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo         portsrepo.UserRepository
	organizationRepo portsrepo.OrganizationRepository
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepository, organizationRepo portsrepo.OrganizationRepository) portssvc.UserSvcFacade {
	return &userService{
		userRepo:         userRepo,
		organizationRepo: organizationRepo,
	}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserWithOrganization(ctx context.Context, userID string) (*domain.User, *domain.Organization, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	org, err := s.organizationRepo.FindOrganizationByID(ctx, user.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	return user, org, nil
}

// Authenticate verifies credentials. Lookup failure and password mismatch are
// indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID, firstName, lastName string) error {
	if firstName == "" || lastName == "" {
		return apperrors.ErrValidation
	}
	return s.userRepo.UpdateUserName(ctx, userID, firstName, lastName)
}
