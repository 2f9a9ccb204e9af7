package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
)

type PgxModuleRepository struct {
	db *pgxpool.Pool
}

func NewModuleRepository(db *pgxpool.Pool) portsrepo.ModuleRepository {
	return &PgxModuleRepository{db: db}
}

// Ensure PgxModuleRepository implements portsrepo.ModuleRepository
var _ portsrepo.ModuleRepository = (*PgxModuleRepository)(nil)

const moduleColumns = `module_id, name, category, price, description, created_at`

func scanModule(row pgx.Row) (*domain.Module, error) {
	var m domain.Module
	err := row.Scan(
		&m.ModuleID,
		&m.Name,
		&m.Category,
		&m.Price,
		&m.Description,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxModuleRepository) FindModuleByName(ctx context.Context, name string) (*domain.Module, error) {
	query := `
		SELECT ` + moduleColumns + `
		FROM modules
		WHERE name = $1;
	`
	module, err := scanModule(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find module by name %s: %w", name, err)
	}
	return module, nil
}

func (r *PgxModuleRepository) FindModulesByNames(ctx context.Context, names []string) ([]domain.Module, error) {
	if len(names) == 0 {
		return []domain.Module{}, nil
	}
	query := `
		SELECT ` + moduleColumns + `
		FROM modules
		WHERE name = ANY($1);
	`
	rows, err := r.db.Query(ctx, query, names)
	if err != nil {
		return nil, wrapQueryErr("failed to query modules by names", err)
	}
	defer rows.Close()

	return collectModules(rows)
}

func (r *PgxModuleRepository) ListModules(ctx context.Context) ([]domain.Module, error) {
	query := `
		SELECT ` + moduleColumns + `
		FROM modules
		ORDER BY category, name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapQueryErr("failed to query modules", err)
	}
	defer rows.Close()

	return collectModules(rows)
}

func collectModules(rows pgx.Rows) ([]domain.Module, error) {
	modules := []domain.Module{}
	for rows.Next() {
		module, err := scanModule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan module row: %w", err)
		}
		modules = append(modules, *module)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating module rows: %w", rows.Err())
	}
	return modules, nil
}
