package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
	"github.com/vitall-hq/vitall_backend/internal/dto"
	"github.com/vitall-hq/vitall_backend/internal/middleware"
)

// checkoutHandler handles the public signup and post-payment routes.
type checkoutHandler struct {
	checkoutService portssvc.CheckoutSvcFacade
}

func newCheckoutHandler(cs portssvc.CheckoutSvcFacade) *checkoutHandler {
	return &checkoutHandler{checkoutService: cs}
}

// registerCheckoutRoutes sets up the public checkout routes. They are
// unauthenticated: the caller has no account yet.
func registerCheckoutRoutes(r *gin.Engine, checkoutService portssvc.CheckoutSvcFacade) {
	h := newCheckoutHandler(checkoutService)

	checkout := r.Group("/api/v1/checkout")
	{
		checkout.POST("", h.StartCheckout)
		checkout.GET("/session-user", h.SessionUser)
	}
}

// StartCheckout godoc
// @Summary Start a signup checkout
// @Description Opens a hosted payment session for a prospective organization and returns the redirect URL.
// @Tags checkout
// @Accept json
// @Produce json
// @Param checkout body dto.CheckoutRequest true "Signup details and selected modules"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /checkout [post]
func (h *checkoutHandler) StartCheckout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	intent := domain.CheckoutIntent{
		OrganizationName:    req.OrganizationName,
		Email:               req.Email,
		Password:            req.Password,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		SelectedModuleNames: req.SelectedModuleNames,
		TotalPrice:          req.TotalPrice,
	}

	redirect, err := h.checkoutService.StartCheckout(c.Request.Context(), intent)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid signup details"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
		default:
			logger.Error("Failed to start checkout", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start checkout"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{SessionID: redirect.SessionID, URL: redirect.URL})
}

// SessionUser godoc
// @Summary Resolve the user behind a checkout session
// @Description Returns the account created for a paid session. When the webhook has not landed yet, the account is materialized on the spot.
// @Tags checkout
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} dto.SessionUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Session unknown or not paid"
// @Failure 500 {object} ErrorResponse
// @Router /checkout/session-user [get]
func (h *checkoutHandler) SessionUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session_id query parameter is required"})
		return
	}

	user, org, err := h.checkoutService.LookupSessionUser(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No user for this session"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Session metadata is incomplete"})
		default:
			logger.Error("Failed to resolve session user",
				slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve session user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SessionUserResponse{
		User:         dto.ToUserResponse(user),
		Organization: dto.ToOrganizationResponse(org),
	})
}
