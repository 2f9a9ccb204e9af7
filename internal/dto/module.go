package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	"github.com/vitall-hq/vitall_backend/internal/registry"
)

// ModuleResponse defines the data returned for a billable module.
type ModuleResponse struct {
	ModuleID    string                `json:"moduleId"`
	Name        string                `json:"name"`
	Category    domain.ModuleCategory `json:"category"`
	Price       decimal.Decimal       `json:"price"`
	Description string                `json:"description"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// AddModuleRequest defines the payload for granting a module to the caller's
// organization.
type AddModuleRequest struct {
	ModuleName string `json:"moduleName" binding:"required"`
}

// RemoveModuleResponse confirms a revocation.
type RemoveModuleResponse struct {
	ModuleID string `json:"moduleId"`
	Removed  bool   `json:"removed"`
}

// ListModulesResponse wraps the list of modules.
type ListModulesResponse struct {
	Modules []ModuleResponse `json:"modules"`
}

// CatalogResponse is the public catalog served to the account-setup UI. Every
// subscription includes the base pack, so its price ships alongside the
// purchasable modules.
type CatalogResponse struct {
	BasePackPrice decimal.Decimal  `json:"basePackPrice"`
	Modules       []ModuleResponse `json:"modules"`
}

// ModuleRouteResponse describes one frontend route contributed by a module.
type ModuleRouteResponse struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// ModuleDefinitionResponse defines the catalog entry returned for a registered
// module, routes and API prefixes included.
type ModuleDefinitionResponse struct {
	Name         string                `json:"name"`
	DisplayName  string                `json:"displayName"`
	Category     domain.ModuleCategory `json:"category"`
	Icon         string                `json:"icon,omitempty"`
	Description  string                `json:"description,omitempty"`
	Version      string                `json:"version,omitempty"`
	AdminRoutes  []ModuleRouteResponse `json:"adminRoutes"`
	UserRoutes   []ModuleRouteResponse `json:"userRoutes"`
	APIPrefixes  []string              `json:"apiPrefixes"`
	Dependencies []string              `json:"dependencies,omitempty"`
}

// ListModuleDefinitionsResponse wraps the module catalog.
type ListModuleDefinitionsResponse struct {
	Modules []ModuleDefinitionResponse `json:"modules"`
}

// ToModuleResponse converts a domain.Module to ModuleResponse DTO
func ToModuleResponse(m *domain.Module) ModuleResponse {
	return ModuleResponse{
		ModuleID:    m.ModuleID,
		Name:        m.Name,
		Category:    m.Category,
		Price:       m.Price,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToListModulesResponse converts a slice of domain.Module to ListModulesResponse DTO
func ToListModulesResponse(modules []domain.Module) ListModulesResponse {
	res := make([]ModuleResponse, len(modules))
	for i, m := range modules {
		res[i] = ToModuleResponse(&m)
	}
	return ListModulesResponse{Modules: res}
}

// ToCatalogResponse builds the public catalog DTO
func ToCatalogResponse(basePackPrice decimal.Decimal, modules []domain.Module) CatalogResponse {
	return CatalogResponse{
		BasePackPrice: basePackPrice,
		Modules:       ToListModulesResponse(modules).Modules,
	}
}

func toModuleRoutes(routes []registry.ModuleRoute) []ModuleRouteResponse {
	res := make([]ModuleRouteResponse, len(routes))
	for i, r := range routes {
		res[i] = ModuleRouteResponse{Title: r.Title, Href: r.Href}
	}
	return res
}

// ToModuleDefinitionResponse converts a registry.ModuleDefinition to its DTO
func ToModuleDefinitionResponse(def *registry.ModuleDefinition) ModuleDefinitionResponse {
	return ModuleDefinitionResponse{
		Name:         def.Name,
		DisplayName:  def.DisplayName,
		Category:     def.Category,
		Icon:         def.Icon,
		Description:  def.Description,
		Version:      def.Version,
		AdminRoutes:  toModuleRoutes(def.AdminRoutes),
		UserRoutes:   toModuleRoutes(def.UserRoutes),
		APIPrefixes:  def.APIPrefixes,
		Dependencies: def.Dependencies,
	}
}

// ToListModuleDefinitionsResponse converts registry definitions to the catalog DTO
func ToListModuleDefinitionsResponse(defs []registry.ModuleDefinition) ListModuleDefinitionsResponse {
	res := make([]ModuleDefinitionResponse, len(defs))
	for i := range defs {
		res[i] = ToModuleDefinitionResponse(&defs[i])
	}
	return ListModuleDefinitionsResponse{Modules: res}
}
