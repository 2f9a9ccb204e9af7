// Package registry holds the static catalog of activatable business modules.
//
// Each module (Planning, Recrutement, ...) is declared with its UI metadata,
// its frontend routes and the API path prefixes it protects. Activation itself
// lives in the database (subscription_modules); the registry is the sole source
// of truth for routing and UI metadata, while the persisted module rows own
// pricing and referential integrity.
package registry

import (
	"fmt"
	"strings"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// ModuleRoute is a frontend route exposed by a module in a sidebar.
type ModuleRoute struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// ModuleDefinition describes one activatable module. Name must match the
// persisted Module.Name; it is the stable identifier, not the display label.
type ModuleDefinition struct {
	Name         string                `json:"name"`
	DisplayName  string                `json:"displayName"`
	Category     domain.ModuleCategory `json:"category"`
	Icon         string                `json:"icon"`
	Description  string                `json:"description"`
	AdminRoutes  []ModuleRoute         `json:"adminRoutes"`
	UserRoutes   []ModuleRoute         `json:"userRoutes"`
	APIPrefixes  []string              `json:"apiPrefixes"`
	Dependencies []string              `json:"dependencies"`
	Version      string                `json:"version"`
}

// Registry is an immutable lookup table over module definitions. It is built
// once at startup and injected where needed; it performs no I/O.
type Registry struct {
	byName map[string]ModuleDefinition
	order  []string
}

// New builds a Registry from the given definitions. It fails on duplicate
// module names and on overlapping API prefixes across modules, so that
// DefinitionForAPIPath is deterministic.
func New(defs []ModuleDefinition) (*Registry, error) {
	byName := make(map[string]ModuleDefinition, len(defs))
	order := make([]string, 0, len(defs))
	prefixOwner := make(map[string]string)

	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("module definition with empty name")
		}
		if _, exists := byName[def.Name]; exists {
			return nil, fmt.Errorf("duplicate module definition %q", def.Name)
		}
		for _, prefix := range def.APIPrefixes {
			for existing, owner := range prefixOwner {
				if strings.HasPrefix(prefix, existing) || strings.HasPrefix(existing, prefix) {
					return nil, fmt.Errorf("module %q api prefix %q overlaps %q of module %q", def.Name, prefix, existing, owner)
				}
			}
			prefixOwner[prefix] = def.Name
		}
		byName[def.Name] = def
		order = append(order, def.Name)
	}

	return &Registry{byName: byName, order: order}, nil
}

// MustNew is New but panics on error. Intended for the compiled-in catalog,
// where a bad definition is a programming error.
func MustNew(defs []ModuleDefinition) *Registry {
	r, err := New(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// Definition returns the definition for the given module name.
func (r *Registry) Definition(name string) (ModuleDefinition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Definitions lists all registered module definitions in declaration order.
func (r *Registry) Definitions() []ModuleDefinition {
	defs := make([]ModuleDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.byName[name])
	}
	return defs
}

// DefinitionForAPIPath returns the module whose API prefixes cover the given
// request path. Prefix disjointness is enforced at construction, so at most one
// module can match.
func (r *Registry) DefinitionForAPIPath(path string) (ModuleDefinition, bool) {
	for _, name := range r.order {
		for _, prefix := range r.byName[name].APIPrefixes {
			if strings.HasPrefix(path, prefix) {
				return r.byName[name], true
			}
		}
	}
	return ModuleDefinition{}, false
}
