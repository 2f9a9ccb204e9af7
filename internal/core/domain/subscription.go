package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus gates entitlement: only ACTIVE subscriptions grant access.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionInactive SubscriptionStatus = "INACTIVE"
)

// Subscription is created exactly once per organization when a checkout
// completes. MonthlyPrice is the agreed total (base pack + selected modules).
type Subscription struct {
	SubscriptionID          string             `json:"subscriptionID"`
	OrganizationID          string             `json:"organizationID"`
	Status                  SubscriptionStatus `json:"status"`
	StartDate               time.Time          `json:"startDate"`
	MonthlyPrice            decimal.Decimal    `json:"monthlyPrice"`
	ExternalSubscriptionRef *string            `json:"externalSubscriptionRef,omitempty"`
	ExternalCustomerRef     *string            `json:"externalCustomerRef,omitempty"`
	CreatedAt               time.Time          `json:"createdAt"`
}

// SubscriptionModule is a grant: the join record asserting a subscription
// includes a module. At most one grant exists per (subscription, module) pair.
type SubscriptionModule struct {
	SubscriptionID string    `json:"subscriptionID"`
	ModuleID       string    `json:"moduleID"`
	ModuleName     string    `json:"moduleName"`
	AddedAt        time.Time `json:"addedAt"`
}

// SubscriptionWithModules is the single consistent read the entitlement guard
// performs: the subscription plus its grants, with module names resolved.
type SubscriptionWithModules struct {
	Subscription
	Modules []SubscriptionModule `json:"modules"`
}

// HasModule reports whether a grant for the named module exists.
func (s SubscriptionWithModules) HasModule(name string) bool {
	for _, m := range s.Modules {
		if m.ModuleName == name {
			return true
		}
	}
	return false
}
