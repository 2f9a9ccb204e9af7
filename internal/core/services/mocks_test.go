package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// --- Mock ModuleRepository ---
type MockModuleRepository struct {
	mock.Mock
	FindModuleByNameFn   func(ctx context.Context, name string) (*domain.Module, error)
	FindModulesByNamesFn func(ctx context.Context, names []string) ([]domain.Module, error)
	ListModulesFn        func(ctx context.Context) ([]domain.Module, error)
}

func (m *MockModuleRepository) FindModuleByName(ctx context.Context, name string) (*domain.Module, error) {
	if m.FindModuleByNameFn != nil {
		return m.FindModuleByNameFn(ctx, name)
	}
	args := m.Called(ctx, name)
	var module *domain.Module
	if args.Get(0) != nil {
		module = args.Get(0).(*domain.Module)
	}
	return module, args.Error(1)
}

func (m *MockModuleRepository) FindModulesByNames(ctx context.Context, names []string) ([]domain.Module, error) {
	if m.FindModulesByNamesFn != nil {
		return m.FindModulesByNamesFn(ctx, names)
	}
	args := m.Called(ctx, names)
	var modules []domain.Module
	if args.Get(0) != nil {
		modules = args.Get(0).([]domain.Module)
	}
	return modules, args.Error(1)
}

func (m *MockModuleRepository) ListModules(ctx context.Context) ([]domain.Module, error) {
	if m.ListModulesFn != nil {
		return m.ListModulesFn(ctx)
	}
	args := m.Called(ctx)
	var modules []domain.Module
	if args.Get(0) != nil {
		modules = args.Get(0).([]domain.Module)
	}
	return modules, args.Error(1)
}

// --- Mock OrganizationRepository ---
type MockOrganizationRepository struct {
	mock.Mock
	FindOrganizationByIDFn func(ctx context.Context, organizationID string) (*domain.Organization, error)
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	if m.FindOrganizationByIDFn != nil {
		return m.FindOrganizationByIDFn(ctx, organizationID)
	}
	args := m.Called(ctx, organizationID)
	var org *domain.Organization
	if args.Get(0) != nil {
		org = args.Get(0).(*domain.Organization)
	}
	return org, args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn    func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateUserNameFn  func(ctx context.Context, userID, firstName, lastName string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUserName(ctx context.Context, userID, firstName, lastName string) error {
	if m.UpdateUserNameFn != nil {
		return m.UpdateUserNameFn(ctx, userID, firstName, lastName)
	}
	args := m.Called(ctx, userID, firstName, lastName)
	return args.Error(0)
}

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
	FindSubscriptionByOrganizationIDFn            func(ctx context.Context, organizationID string) (*domain.Subscription, error)
	FindSubscriptionWithModulesByOrganizationIDFn func(ctx context.Context, organizationID string) (*domain.SubscriptionWithModules, error)
	ListModulesForSubscriptionFn                  func(ctx context.Context, subscriptionID string) ([]domain.Module, error)
	AddSubscriptionModuleFn                       func(ctx context.Context, grant domain.SubscriptionModule) error
	RemoveSubscriptionModuleFn                    func(ctx context.Context, subscriptionID, moduleID string) (int64, error)
}

func (m *MockSubscriptionRepository) FindSubscriptionByOrganizationID(ctx context.Context, organizationID string) (*domain.Subscription, error) {
	if m.FindSubscriptionByOrganizationIDFn != nil {
		return m.FindSubscriptionByOrganizationIDFn(ctx, organizationID)
	}
	args := m.Called(ctx, organizationID)
	var sub *domain.Subscription
	if args.Get(0) != nil {
		sub = args.Get(0).(*domain.Subscription)
	}
	return sub, args.Error(1)
}

func (m *MockSubscriptionRepository) FindSubscriptionWithModulesByOrganizationID(ctx context.Context, organizationID string) (*domain.SubscriptionWithModules, error) {
	if m.FindSubscriptionWithModulesByOrganizationIDFn != nil {
		return m.FindSubscriptionWithModulesByOrganizationIDFn(ctx, organizationID)
	}
	args := m.Called(ctx, organizationID)
	var sub *domain.SubscriptionWithModules
	if args.Get(0) != nil {
		sub = args.Get(0).(*domain.SubscriptionWithModules)
	}
	return sub, args.Error(1)
}

func (m *MockSubscriptionRepository) ListModulesForSubscription(ctx context.Context, subscriptionID string) ([]domain.Module, error) {
	if m.ListModulesForSubscriptionFn != nil {
		return m.ListModulesForSubscriptionFn(ctx, subscriptionID)
	}
	args := m.Called(ctx, subscriptionID)
	var modules []domain.Module
	if args.Get(0) != nil {
		modules = args.Get(0).([]domain.Module)
	}
	return modules, args.Error(1)
}

func (m *MockSubscriptionRepository) AddSubscriptionModule(ctx context.Context, grant domain.SubscriptionModule) error {
	if m.AddSubscriptionModuleFn != nil {
		return m.AddSubscriptionModuleFn(ctx, grant)
	}
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) RemoveSubscriptionModule(ctx context.Context, subscriptionID, moduleID string) (int64, error) {
	if m.RemoveSubscriptionModuleFn != nil {
		return m.RemoveSubscriptionModuleFn(ctx, subscriptionID, moduleID)
	}
	args := m.Called(ctx, subscriptionID, moduleID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock RegistrationRepository ---
type MockRegistrationRepository struct {
	mock.Mock
	CreateSignupFn func(ctx context.Context, org domain.Organization, user domain.User, sub domain.Subscription, grants []domain.SubscriptionModule) error
}

func (m *MockRegistrationRepository) CreateSignup(ctx context.Context, org domain.Organization, user domain.User, sub domain.Subscription, grants []domain.SubscriptionModule) error {
	if m.CreateSignupFn != nil {
		return m.CreateSignupFn(ctx, org, user, sub, grants)
	}
	args := m.Called(ctx, org, user, sub, grants)
	return args.Error(0)
}

// --- Mock CheckoutGateway ---
type MockCheckoutGateway struct {
	mock.Mock
	CreateSessionFn  func(ctx context.Context, signup domain.SignupMetadata) (*domain.CheckoutRedirect, error)
	GetSessionFn     func(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
	ConstructEventFn func(payload []byte, signatureHeader string) (*domain.CheckoutEvent, error)
}

func (m *MockCheckoutGateway) CreateSession(ctx context.Context, signup domain.SignupMetadata) (*domain.CheckoutRedirect, error) {
	if m.CreateSessionFn != nil {
		return m.CreateSessionFn(ctx, signup)
	}
	args := m.Called(ctx, signup)
	var redirect *domain.CheckoutRedirect
	if args.Get(0) != nil {
		redirect = args.Get(0).(*domain.CheckoutRedirect)
	}
	return redirect, args.Error(1)
}

func (m *MockCheckoutGateway) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	if m.GetSessionFn != nil {
		return m.GetSessionFn(ctx, sessionID)
	}
	args := m.Called(ctx, sessionID)
	var session *domain.CheckoutSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.CheckoutSession)
	}
	return session, args.Error(1)
}

func (m *MockCheckoutGateway) ConstructEvent(payload []byte, signatureHeader string) (*domain.CheckoutEvent, error) {
	if m.ConstructEventFn != nil {
		return m.ConstructEventFn(payload, signatureHeader)
	}
	args := m.Called(payload, signatureHeader)
	var event *domain.CheckoutEvent
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.CheckoutEvent)
	}
	return event, args.Error(1)
}
