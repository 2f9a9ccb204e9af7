package dto

import "github.com/shopspring/decimal"

// CheckoutRequest defines the signup payload that opens a hosted checkout
// session. The selected module names are validated against the database
// catalog downstream.
type CheckoutRequest struct {
	OrganizationName    string          `json:"organizationName" binding:"required"`
	Email               string          `json:"email" binding:"required,email"`
	Password            string          `json:"password" binding:"required,min=8"`
	FirstName           string          `json:"firstName" binding:"required"`
	LastName            string          `json:"lastName" binding:"required"`
	SelectedModuleNames []string        `json:"selectedModuleNames"`
	TotalPrice          decimal.Decimal `json:"totalPrice" binding:"required"`
}

// CheckoutResponse carries the provider redirect for the client.
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// SessionUserResponse is returned by the post-payment fallback lookup once the
// account exists, whether the webhook or the lookup itself materialized it.
type SessionUserResponse struct {
	User         UserResponse         `json:"user"`
	Organization OrganizationResponse `json:"organization"`
}
