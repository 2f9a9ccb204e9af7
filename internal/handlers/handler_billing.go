package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
	"github.com/vitall-hq/vitall_backend/internal/middleware"
)

// billingHandler receives payment provider webhooks.
type billingHandler struct {
	gateway             portssvc.CheckoutGateway
	registrationService portssvc.RegistrationSvcFacade
}

func newBillingHandler(gw portssvc.CheckoutGateway, rs portssvc.RegistrationSvcFacade) *billingHandler {
	return &billingHandler{gateway: gw, registrationService: rs}
}

// registerBillingRoutes sets up the webhook endpoint. It is unauthenticated;
// the signature header is the only trust anchor.
func registerBillingRoutes(r *gin.Engine, gateway portssvc.CheckoutGateway, registrationService portssvc.RegistrationSvcFacade) {
	h := newBillingHandler(gateway, registrationService)
	r.POST("/api/v1/billing/webhook", h.Webhook)
}

// Webhook godoc
// @Summary Payment provider webhook
// @Description Verifies the event signature and reconciles completed checkout sessions into accounts.
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Bad signature or malformed payload"
// @Failure 500 {object} ErrorResponse
// @Router /billing/webhook [post]
func (h *billingHandler) Webhook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := c.GetRawData()
	if err != nil {
		logger.Error("Failed to read webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read payload"})
		return
	}

	event, err := h.gateway.ConstructEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, apperrors.ErrSignatureVerification) {
			logger.Warn("Webhook signature verification failed")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid signature"})
			return
		}
		logger.Error("Failed to construct webhook event", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed event payload"})
		return
	}

	if event.Type != domain.EventCheckoutCompleted || event.Session == nil {
		// Unhandled event types are acknowledged so the provider stops retrying.
		logger.Debug("Ignoring webhook event", slog.String("type", event.Type))
		c.JSON(http.StatusOK, gin.H{"received": "true"})
		return
	}

	if !event.Session.Paid() {
		logger.Info("Checkout completed event without confirmed payment, skipping",
			slog.String("session_id", event.Session.SessionID),
			slog.String("payment_status", event.Session.PaymentStatus))
		c.JSON(http.StatusOK, gin.H{"received": "true"})
		return
	}

	user, _, err := h.registrationService.ProcessCompletedCheckout(c.Request.Context(), *event.Session)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Webhook session metadata rejected",
				slog.String("session_id", event.Session.SessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid session metadata"})
			return
		}
		// Non-2xx makes the provider redeliver; reconciliation is idempotent so
		// the retry is safe.
		logger.Error("Failed to reconcile completed checkout",
			slog.String("session_id", event.Session.SessionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process event"})
		return
	}

	logger.Info("Checkout session reconciled",
		slog.String("session_id", event.Session.SessionID),
		slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, gin.H{"received": "true"})
}
