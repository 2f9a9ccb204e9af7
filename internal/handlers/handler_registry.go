package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vitall-hq/vitall_backend/internal/core/ports/services"
	"github.com/vitall-hq/vitall_backend/internal/dto"
	"github.com/vitall-hq/vitall_backend/internal/middleware"
	"github.com/vitall-hq/vitall_backend/internal/registry"
)

// registerGatedModuleRoutes mounts one route group per module API prefix,
// protected by the entitlement guard. Module business routes attach beneath
// these groups; the index route serves the module definition so clients can
// discover routes and metadata.
func registerGatedModuleRoutes(r *gin.Engine, reg *registry.Registry, authMiddleware gin.HandlerFunc, entitlementService portssvc.EntitlementSvcFacade) {
	for _, def := range reg.Definitions() {
		def := def
		for _, prefix := range def.APIPrefixes {
			group := r.Group(prefix, authMiddleware, middleware.RequireModule(entitlementService, def.Name))
			group.GET("", func(c *gin.Context) {
				c.JSON(http.StatusOK, dto.ToModuleDefinitionResponse(&def))
			})
		}
	}
}

// registerModuleDefinitionRoutes exposes the compiled-in module catalog with
// routes and UI metadata. Public: the account-setup UI reads it pre-signup.
func registerModuleDefinitionRoutes(r *gin.Engine, reg *registry.Registry) {
	r.GET("/api/v1/modules/definitions", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.ToListModuleDefinitionsResponse(reg.Definitions()))
	})
}
