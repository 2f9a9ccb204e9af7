package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
	"github.com/vitall-hq/vitall_backend/internal/dto"
	"github.com/vitall-hq/vitall_backend/internal/middleware"
	"github.com/vitall-hq/vitall_backend/internal/platform/config"
)

// moduleHandler handles the module catalog and per-organization grants.
type moduleHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
	basePackPrice       decimal.Decimal
}

func newModuleHandler(ss portssvc.SubscriptionSvcFacade, basePackPrice decimal.Decimal) *moduleHandler {
	return &moduleHandler{subscriptionService: ss, basePackPrice: basePackPrice}
}

// registerCatalogRoutes sets up the public catalog route used by the
// account-setup UI before any account exists.
func registerCatalogRoutes(r *gin.Engine, cfg *config.Config, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newModuleHandler(subscriptionService, cfg.BasePackPrice)
	r.GET("/api/v1/modules", h.ListCatalog)
}

// registerOrgModuleRoutes sets up the authenticated grant management routes.
func registerOrgModuleRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newModuleHandler(subscriptionService, decimal.Zero)

	org := rg.Group("/org/modules")
	{
		org.GET("", h.ListOrgModules)
		org.POST("", h.AddModule)
		org.DELETE("/:module_id", h.RemoveModule)
	}
}

// ListCatalog godoc
// @Summary List purchasable modules
// @Description Returns the base pack price and every module in the catalog with its price and category.
// @Tags modules
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Failure 500 {object} ErrorResponse
// @Router /modules [get]
func (h *moduleHandler) ListCatalog(c *gin.Context) {
	modules, err := h.subscriptionService.ListCatalog(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list module catalog", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list modules"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCatalogResponse(h.basePackPrice, modules))
}

// ListOrgModules godoc
// @Summary List active modules
// @Description Returns the modules currently granted to the caller's organization.
// @Tags modules
// @Produce json
// @Success 200 {object} dto.ListModulesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /org/modules [get]
func (h *moduleHandler) ListOrgModules(c *gin.Context) {
	authUser, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	modules, err := h.subscriptionService.ListOrganizationModules(c.Request.Context(), authUser.OrganizationID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list organization modules", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list modules"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListModulesResponse(modules))
}

// AddModule godoc
// @Summary Add a module
// @Description Grants the named module to the caller's organization. The grant is effective immediately.
// @Tags modules
// @Accept json
// @Produce json
// @Param module body dto.AddModuleRequest true "Module to add"
// @Success 200 {object} dto.ModuleResponse
// @Failure 400 {object} ErrorResponse "Module already active"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown module or no subscription"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /org/modules [post]
func (h *moduleHandler) AddModule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	authUser, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	module, err := h.subscriptionService.AddModule(c.Request.Context(), authUser.OrganizationID, req.ModuleName)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Module or subscription not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Module already active"})
		default:
			logger.Error("Failed to add module", slog.String("module", req.ModuleName), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add module"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToModuleResponse(module))
}

// RemoveModule godoc
// @Summary Remove a module
// @Description Revokes a module grant from the caller's organization. Removing an absent grant succeeds.
// @Tags modules
// @Produce json
// @Param module_id path string true "Module ID"
// @Success 200 {object} dto.RemoveModuleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No subscription"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /org/modules/{module_id} [delete]
func (h *moduleHandler) RemoveModule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	authUser, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	moduleID := c.Param("module_id")
	if err := h.subscriptionService.RemoveModule(c.Request.Context(), authUser.OrganizationID, moduleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Subscription not found"})
			return
		}
		logger.Error("Failed to remove module", slog.String("module_id", moduleID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove module"})
		return
	}

	c.JSON(http.StatusOK, dto.RemoveModuleResponse{ModuleID: moduleID, Removed: true})
}
