package domain

import "github.com/shopspring/decimal"

// Checkout session states as reported by the payment provider.
const (
	CheckoutStatusComplete      = "complete"
	CheckoutPaymentStatusPaid   = "paid"
	CheckoutPaymentStatusUnpaid = "unpaid"
)

// SignupMetadata is the typed form of the metadata bag round-tripped through the
// external checkout session. It is the sole input to reconciliation, so adapters
// must fail closed when a required field is absent.
type SignupMetadata struct {
	OrganizationName    string
	Email               string
	PasswordHash        string
	FirstName           string
	LastName            string
	SelectedModuleNames []string
	TotalPrice          decimal.Decimal
}

// CheckoutSession is the provider-neutral view of a checkout session, as seen by
// the reconciler. It is produced either from a signed webhook event (push) or
// from a direct session lookup (pull fallback).
type CheckoutSession struct {
	SessionID       string
	Status          string
	PaymentStatus   string
	CustomerRef     string
	SubscriptionRef string
	Signup          SignupMetadata
}

// Paid reports whether the session represents a confirmed, completed payment.
func (s CheckoutSession) Paid() bool {
	return s.PaymentStatus == CheckoutPaymentStatusPaid && s.Status == CheckoutStatusComplete
}

// EventCheckoutCompleted is the provider event type consumed by the reconciler.
const EventCheckoutCompleted = "checkout.session.completed"

// CheckoutEvent is a verified event delivered by the payment provider.
type CheckoutEvent struct {
	Type    string
	Session *CheckoutSession
}

// CheckoutIntent is a prospective signup as submitted by the account-setup UI.
// The password is plaintext here and is hashed before it leaves the process.
type CheckoutIntent struct {
	OrganizationName    string
	Email               string
	Password            string
	FirstName           string
	LastName            string
	SelectedModuleNames []string
	TotalPrice          decimal.Decimal
}

// CheckoutRedirect is the provider-hosted page the client is sent to.
type CheckoutRedirect struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
