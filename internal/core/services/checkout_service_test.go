package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
	"github.com/vitall-hq/vitall_backend/internal/core/services"
)

type CheckoutServiceTestSuite struct {
	suite.Suite
	mockGateway      *MockCheckoutGateway
	mockRegistration *MockRegistrationService
	mockUserRepo     *MockUserRepository
	mockOrgRepo      *MockOrganizationRepository
	service          portssvc.CheckoutSvcFacade
}

// MockRegistrationService stubs the reconciliation facade for fallback tests.
type MockRegistrationService struct {
	ProcessCompletedCheckoutFn func(ctx context.Context, session domain.CheckoutSession) (*domain.User, *domain.Organization, error)
	calls                      int
}

func (m *MockRegistrationService) ProcessCompletedCheckout(ctx context.Context, session domain.CheckoutSession) (*domain.User, *domain.Organization, error) {
	m.calls++
	if m.ProcessCompletedCheckoutFn != nil {
		return m.ProcessCompletedCheckoutFn(ctx, session)
	}
	return nil, nil, nil
}

func (suite *CheckoutServiceTestSuite) SetupTest() {
	suite.mockGateway = new(MockCheckoutGateway)
	suite.mockRegistration = new(MockRegistrationService)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.service = services.NewCheckoutService(
		suite.mockGateway,
		suite.mockRegistration,
		suite.mockUserRepo,
		suite.mockOrgRepo,
	)
}

func checkoutIntent() domain.CheckoutIntent {
	return domain.CheckoutIntent{
		OrganizationName:    "Boulangerie Martin",
		Email:               "a@b.fr",
		Password:            "s3cretpass",
		FirstName:           "Jean",
		LastName:            "Martin",
		SelectedModuleNames: []string{"Planning"},
		TotalPrice:          decimal.RequireFromString("335.00"),
	}
}

func (suite *CheckoutServiceTestSuite) TestStartCheckout_Success() {
	ctx := context.Background()
	intent := checkoutIntent()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "a@b.fr").Return(nil, apperrors.ErrNotFound).Once()

	var sent domain.SignupMetadata
	suite.mockGateway.CreateSessionFn = func(_ context.Context, signup domain.SignupMetadata) (*domain.CheckoutRedirect, error) {
		sent = signup
		return &domain.CheckoutRedirect{SessionID: "cs_test_123", URL: "https://pay.example/cs_test_123"}, nil
	}

	redirect, err := suite.service.StartCheckout(ctx, intent)

	suite.Require().NoError(err)
	suite.Equal("cs_test_123", redirect.SessionID)

	// The plaintext password never reaches the gateway.
	suite.NotEqual("s3cretpass", sent.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(sent.PasswordHash), []byte("s3cretpass")))
	suite.Equal([]string{"Planning"}, sent.SelectedModuleNames)
	suite.True(sent.TotalPrice.Equal(decimal.RequireFromString("335.00")))
}

func (suite *CheckoutServiceTestSuite) TestStartCheckout_MissingFields() {
	intent := checkoutIntent()
	intent.Email = ""

	redirect, err := suite.service.StartCheckout(context.Background(), intent)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(redirect)
}

func (suite *CheckoutServiceTestSuite) TestStartCheckout_EmailAlreadyRegistered() {
	ctx := context.Background()
	intent := checkoutIntent()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "a@b.fr").
		Return(&domain.User{UserID: uuid.NewString(), Email: "a@b.fr"}, nil).Once()

	redirect, err := suite.service.StartCheckout(ctx, intent)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(redirect)
}

func (suite *CheckoutServiceTestSuite) TestLookupSessionUser_WebhookAlreadyLanded() {
	ctx := context.Background()
	orgID := uuid.NewString()
	user := &domain.User{UserID: uuid.NewString(), Email: "a@b.fr", OrganizationID: orgID}
	org := &domain.Organization{OrganizationID: orgID}

	suite.mockGateway.GetSessionFn = func(context.Context, string) (*domain.CheckoutSession, error) {
		return &domain.CheckoutSession{
			SessionID:     "cs_test_123",
			Status:        domain.CheckoutStatusComplete,
			PaymentStatus: domain.CheckoutPaymentStatusPaid,
			Signup:        domain.SignupMetadata{Email: "a@b.fr"},
		}, nil
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "a@b.fr").Return(user, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(org, nil).Once()

	gotUser, gotOrg, err := suite.service.LookupSessionUser(ctx, "cs_test_123")

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.Equal(org, gotOrg)
	suite.Zero(suite.mockRegistration.calls)
}

func (suite *CheckoutServiceTestSuite) TestLookupSessionUser_FallbackReconciles() {
	ctx := context.Background()
	orgID := uuid.NewString()
	user := &domain.User{UserID: uuid.NewString(), Email: "a@b.fr", OrganizationID: orgID}
	org := &domain.Organization{OrganizationID: orgID}

	session := &domain.CheckoutSession{
		SessionID:     "cs_test_123",
		Status:        domain.CheckoutStatusComplete,
		PaymentStatus: domain.CheckoutPaymentStatusPaid,
		Signup:        domain.SignupMetadata{Email: "a@b.fr"},
	}
	suite.mockGateway.GetSessionFn = func(context.Context, string) (*domain.CheckoutSession, error) {
		return session, nil
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "a@b.fr").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRegistration.ProcessCompletedCheckoutFn = func(_ context.Context, got domain.CheckoutSession) (*domain.User, *domain.Organization, error) {
		suite.Equal(*session, got)
		return user, org, nil
	}

	gotUser, gotOrg, err := suite.service.LookupSessionUser(ctx, "cs_test_123")

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.Equal(org, gotOrg)
	suite.Equal(1, suite.mockRegistration.calls)
}

func (suite *CheckoutServiceTestSuite) TestLookupSessionUser_UnpaidSession() {
	ctx := context.Background()

	suite.mockGateway.GetSessionFn = func(context.Context, string) (*domain.CheckoutSession, error) {
		return &domain.CheckoutSession{
			SessionID:     "cs_test_123",
			Status:        "open",
			PaymentStatus: domain.CheckoutPaymentStatusUnpaid,
			Signup:        domain.SignupMetadata{Email: "a@b.fr"},
		}, nil
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "a@b.fr").Return(nil, apperrors.ErrNotFound).Once()

	gotUser, gotOrg, err := suite.service.LookupSessionUser(ctx, "cs_test_123")

	// An unpaid session never triggers reconciliation.
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(gotUser)
	suite.Nil(gotOrg)
	suite.Zero(suite.mockRegistration.calls)
}

func (suite *CheckoutServiceTestSuite) TestLookupSessionUser_UnknownSession() {
	ctx := context.Background()

	suite.mockGateway.GetSessionFn = func(context.Context, string) (*domain.CheckoutSession, error) {
		return nil, apperrors.ErrNotFound
	}

	gotUser, gotOrg, err := suite.service.LookupSessionUser(ctx, "cs_unknown")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(gotUser)
	suite.Nil(gotOrg)
}

func TestCheckoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}
