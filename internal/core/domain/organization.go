package domain

import "time"

// Organization is a tenant: the billing and entitlement unit. Each organization
// owns exactly one subscription, created together with it at reconciliation time.
type Organization struct {
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	Address        *string   `json:"address,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
