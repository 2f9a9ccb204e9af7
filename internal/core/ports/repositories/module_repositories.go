package repositories

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// ModuleRepository defines persistence operations for the module catalog.
// The catalog is seeded by migrations; this port only reads it.
type ModuleRepository interface {
	// FindModuleByName returns apperrors.ErrNotFound when the name is unknown.
	FindModuleByName(ctx context.Context, name string) (*domain.Module, error)
	// FindModulesByNames returns the catalog rows matching the given names.
	// Unknown names are simply absent from the result, not an error.
	FindModulesByNames(ctx context.Context, names []string) ([]domain.Module, error)
	ListModules(ctx context.Context) ([]domain.Module, error)
}
