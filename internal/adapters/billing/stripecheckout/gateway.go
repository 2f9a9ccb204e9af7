// Package stripecheckout implements the payment provider boundary on top of
// Stripe hosted checkout. Signup metadata rides on the session metadata bag and
// comes back verbatim in webhook events and session lookups.
package stripecheckout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
)

// Metadata keys on the Stripe checkout session.
const (
	metaOrganizationName = "organizationName"
	metaEmail            = "email"
	metaPasswordHash     = "passwordHash"
	metaFirstName        = "firstName"
	metaLastName         = "lastName"
	metaSelectedModules  = "selectedModuleNames"
	metaTotalPrice       = "totalPrice"
)

// Config holds the Stripe credentials and redirect targets.
type Config struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

type Gateway struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

// Ensure Gateway implements portssvc.CheckoutGateway
var _ portssvc.CheckoutGateway = (*Gateway)(nil)

func NewGateway(cfg Config) *Gateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &Gateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
	}
}

// CreateSession opens a subscription-mode hosted checkout carrying the signup
// metadata. Stripe limits metadata values to 500 characters, which comfortably
// fits the module name list and the bcrypt hash.
func (g *Gateway) CreateSession(ctx context.Context, signup domain.SignupMetadata) (*domain.CheckoutRedirect, error) {
	moduleNames, err := json.Marshal(signup.SelectedModuleNames)
	if err != nil {
		return nil, fmt.Errorf("failed to encode module names: %w", err)
	}

	unitAmount := signup.TotalPrice.Shift(2).Round(0).IntPart()

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:    stripe.String(g.successURL),
		CancelURL:     stripe.String(g.cancelURL),
		CustomerEmail: stripe.String(signup.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyEUR)),
					UnitAmount: stripe.Int64(unitAmount),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
					},
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Abonnement Vitall"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata(metaOrganizationName, signup.OrganizationName)
	params.AddMetadata(metaEmail, signup.Email)
	params.AddMetadata(metaPasswordHash, signup.PasswordHash)
	params.AddMetadata(metaFirstName, signup.FirstName)
	params.AddMetadata(metaLastName, signup.LastName)
	params.AddMetadata(metaSelectedModules, string(moduleNames))
	params.AddMetadata(metaTotalPrice, signup.TotalPrice.StringFixed(2))

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &domain.CheckoutRedirect{SessionID: sess.ID, URL: sess.URL}, nil
}

func (g *Gateway) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.HTTPStatusCode == 404 {
			return nil, fmt.Errorf("checkout session %s: %w", sessionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch checkout session %s: %w", sessionID, err)
	}
	return mapSession(sess)
}

// ConstructEvent verifies the webhook signature and decodes the session payload
// for checkout completion events. Events of other types pass through with a nil
// session so the handler can acknowledge and ignore them.
func (g *Gateway) ConstructEvent(payload []byte, signatureHeader string) (*domain.CheckoutEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature rejected: %w", apperrors.ErrSignatureVerification)
	}

	out := &domain.CheckoutEvent{Type: string(event.Type)}
	if out.Type != domain.EventCheckoutCompleted {
		return out, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session payload: %w", err)
	}
	mapped, err := mapSession(&sess)
	if err != nil {
		return nil, err
	}
	out.Session = mapped
	return out, nil
}

// mapSession converts a Stripe session into the provider-neutral form. The
// metadata is the sole input to reconciliation, so a missing required field
// fails closed instead of registering a half-formed account.
func mapSession(sess *stripe.CheckoutSession) (*domain.CheckoutSession, error) {
	signup, err := parseSignupMetadata(sess.Metadata)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sess.ID, err)
	}

	out := &domain.CheckoutSession{
		SessionID:     sess.ID,
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		Signup:        signup,
	}
	if sess.Customer != nil {
		out.CustomerRef = sess.Customer.ID
	}
	if sess.Subscription != nil {
		out.SubscriptionRef = sess.Subscription.ID
	}
	return out, nil
}

func parseSignupMetadata(meta map[string]string) (domain.SignupMetadata, error) {
	var signup domain.SignupMetadata
	var missing []string
	require := func(key string) string {
		v := meta[key]
		if strings.TrimSpace(v) == "" {
			missing = append(missing, key)
		}
		return v
	}

	signup.OrganizationName = require(metaOrganizationName)
	signup.Email = require(metaEmail)
	signup.PasswordHash = require(metaPasswordHash)
	signup.FirstName = require(metaFirstName)
	signup.LastName = require(metaLastName)
	rawModules := require(metaSelectedModules)
	rawPrice := require(metaTotalPrice)
	if len(missing) > 0 {
		return domain.SignupMetadata{}, fmt.Errorf("checkout metadata missing %s: %w", strings.Join(missing, ", "), apperrors.ErrValidation)
	}

	if err := json.Unmarshal([]byte(rawModules), &signup.SelectedModuleNames); err != nil {
		return domain.SignupMetadata{}, fmt.Errorf("checkout metadata %s is not a JSON array: %w", metaSelectedModules, apperrors.ErrValidation)
	}
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return domain.SignupMetadata{}, fmt.Errorf("checkout metadata %s is not a decimal: %w", metaTotalPrice, apperrors.ErrValidation)
	}
	signup.TotalPrice = price
	return signup, nil
}
