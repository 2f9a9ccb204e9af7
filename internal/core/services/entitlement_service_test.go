package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
	"github.com/vitall-hq/vitall_backend/internal/core/services"
)

type EntitlementServiceTestSuite struct {
	suite.Suite
	mockSubRepo *MockSubscriptionRepository
	service     portssvc.EntitlementSvcFacade
}

func (suite *EntitlementServiceTestSuite) SetupTest() {
	suite.mockSubRepo = new(MockSubscriptionRepository)
	suite.service = services.NewEntitlementService(suite.mockSubRepo)
}

func activeSubWith(orgID string, moduleNames ...string) *domain.SubscriptionWithModules {
	sub := &domain.SubscriptionWithModules{
		Subscription: domain.Subscription{
			SubscriptionID: uuid.NewString(),
			OrganizationID: orgID,
			Status:         domain.SubscriptionActive,
		},
	}
	for _, name := range moduleNames {
		sub.Modules = append(sub.Modules, domain.SubscriptionModule{
			SubscriptionID: sub.SubscriptionID,
			ModuleID:       uuid.NewString(),
			ModuleName:     name,
		})
	}
	return sub
}

func (suite *EntitlementServiceTestSuite) TestCheckModuleAccess_Granted() {
	ctx := context.Background()
	orgID := uuid.NewString()
	authUser := &domain.AuthUser{UserID: uuid.NewString(), OrganizationID: orgID, Role: domain.RoleUser}

	suite.mockSubRepo.On("FindSubscriptionWithModulesByOrganizationID", ctx, orgID).
		Return(activeSubWith(orgID, "Planning", "Paie"), nil).Once()

	err := suite.service.CheckModuleAccess(ctx, authUser, "Planning")

	suite.NoError(err)
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *EntitlementServiceTestSuite) TestCheckModuleAccess_NilIdentity() {
	err := suite.service.CheckModuleAccess(context.Background(), nil, "Planning")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	// Unauthenticated requests are rejected before any data access.
	suite.mockSubRepo.AssertNotCalled(suite.T(), "FindSubscriptionWithModulesByOrganizationID")
}

func (suite *EntitlementServiceTestSuite) TestCheckModuleAccess_NoOrganization() {
	authUser := &domain.AuthUser{UserID: uuid.NewString()}

	err := suite.service.CheckModuleAccess(context.Background(), authUser, "Planning")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockSubRepo.AssertNotCalled(suite.T(), "FindSubscriptionWithModulesByOrganizationID")
}

func (suite *EntitlementServiceTestSuite) TestCheckModuleAccess_NoSubscription() {
	ctx := context.Background()
	orgID := uuid.NewString()
	authUser := &domain.AuthUser{UserID: uuid.NewString(), OrganizationID: orgID}

	suite.mockSubRepo.On("FindSubscriptionWithModulesByOrganizationID", ctx, orgID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.CheckModuleAccess(ctx, authUser, "Planning")

	suite.ErrorIs(err, apperrors.ErrSubscriptionInactive)
}

func (suite *EntitlementServiceTestSuite) TestCheckModuleAccess_InactiveSubscriptionBlocksGrantedModule() {
	ctx := context.Background()
	orgID := uuid.NewString()
	authUser := &domain.AuthUser{UserID: uuid.NewString(), OrganizationID: orgID}

	sub := activeSubWith(orgID, "Planning")
	sub.Status = domain.SubscriptionInactive
	suite.mockSubRepo.On("FindSubscriptionWithModulesByOrganizationID", ctx, orgID).
		Return(sub, nil).Once()

	// Even a granted module is blocked while the subscription is inactive.
	err := suite.service.CheckModuleAccess(ctx, authUser, "Planning")

	suite.ErrorIs(err, apperrors.ErrSubscriptionInactive)
}

func (suite *EntitlementServiceTestSuite) TestCheckModuleAccess_ModuleNotGranted() {
	ctx := context.Background()
	orgID := uuid.NewString()
	authUser := &domain.AuthUser{UserID: uuid.NewString(), OrganizationID: orgID}

	suite.mockSubRepo.On("FindSubscriptionWithModulesByOrganizationID", ctx, orgID).
		Return(activeSubWith(orgID, "Paie"), nil).Once()

	err := suite.service.CheckModuleAccess(ctx, authUser, "Planning")

	var notActive apperrors.ModuleNotActiveError
	suite.Require().ErrorAs(err, &notActive)
	suite.Equal("Planning", notActive.Module)
}

func (suite *EntitlementServiceTestSuite) TestCheckModuleAccess_RepoError() {
	ctx := context.Background()
	orgID := uuid.NewString()
	authUser := &domain.AuthUser{UserID: uuid.NewString(), OrganizationID: orgID}

	suite.mockSubRepo.On("FindSubscriptionWithModulesByOrganizationID", ctx, orgID).
		Return(nil, context.DeadlineExceeded).Once()

	err := suite.service.CheckModuleAccess(ctx, authUser, "Planning")

	// Infrastructure failures are not denials and must not masquerade as one.
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.NotErrorIs(err, apperrors.ErrSubscriptionInactive)
}

func (suite *EntitlementServiceTestSuite) TestCheckAuthenticated() {
	ctx := context.Background()

	suite.ErrorIs(suite.service.CheckAuthenticated(ctx, nil), apperrors.ErrUnauthorized)
	suite.ErrorIs(suite.service.CheckAuthenticated(ctx, &domain.AuthUser{UserID: "u1"}), apperrors.ErrUnauthorized)
	suite.ErrorIs(suite.service.CheckAuthenticated(ctx, &domain.AuthUser{OrganizationID: "o1"}), apperrors.ErrUnauthorized)
	suite.NoError(suite.service.CheckAuthenticated(ctx, &domain.AuthUser{UserID: "u1", OrganizationID: "o1"}))
}

func TestEntitlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntitlementServiceTestSuite))
}
