package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
	"github.com/vitall-hq/vitall_backend/internal/middleware"
	"github.com/vitall-hq/vitall_backend/internal/platform/config"
	"github.com/vitall-hq/vitall_backend/internal/registry"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	reg *registry.Registry,
	services *portssvc.ServiceContainer,
	gateway portssvc.CheckoutGateway,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes: login, signup checkout, webhook and the module catalog
	registerAuthRoutes(r, cfg, services.User)
	registerCheckoutRoutes(r, services.Checkout)
	registerBillingRoutes(r, gateway, services.Registration)
	registerCatalogRoutes(r, cfg, services.Subscription)
	registerModuleDefinitionRoutes(r, reg)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, reg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated groups: the /api/v1 account
// surface and the per-module gated groups.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	reg *registry.Registry,
	services *portssvc.ServiceContainer,
) {
	authMW := middleware.AuthMiddleware(cfg.JWTSecret)

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", authMW)

	registerMeRoute(v1, cfg, services.User)
	registerUserRoutes(v1, services.User)

	// Grant management additionally requires a verified org association
	orgScoped := v1.Group("", middleware.RequireAuthenticated(services.Entitlement))
	registerOrgModuleRoutes(orgScoped, services.Subscription)

	// One gated group per registered module API prefix
	registerGatedModuleRoutes(r, reg, authMW, services.Entitlement)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
