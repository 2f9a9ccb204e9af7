package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
	"github.com/vitall-hq/vitall_backend/internal/core/services"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockOrgRepo  *MockOrganizationRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockOrgRepo)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "a@b.fr", PasswordHash: string(hash)}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "a@b.fr").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "a@b.fr", "s3cretpass")

	suite.Require().NoError(err)
	suite.Equal(user, got)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	user := &domain.User{UserID: uuid.NewString(), Email: "a@b.fr", PasswordHash: string(hash)}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "a@b.fr").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "a@b.fr", "wrongpass")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@b.fr").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "nobody@b.fr", "whatever")

	// Unknown email and bad password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestGetUserWithOrganization() {
	ctx := context.Background()
	orgID := uuid.NewString()
	user := &domain.User{UserID: uuid.NewString(), OrganizationID: orgID}
	org := &domain.Organization{OrganizationID: orgID, Name: "Boulangerie Martin"}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(org, nil).Once()

	gotUser, gotOrg, err := suite.service.GetUserWithOrganization(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.Equal(org, gotOrg)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_Validation() {
	err := suite.service.UpdateProfile(context.Background(), uuid.NewString(), "", "Martin")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUserName")
}

func (suite *UserServiceTestSuite) TestUpdateProfile_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("UpdateUserName", ctx, userID, "Jeanne", "Martin").Return(nil).Once()

	err := suite.service.UpdateProfile(ctx, userID, "Jeanne", "Martin")

	suite.NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
