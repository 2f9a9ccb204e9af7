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

type PgxOrganizationRepository struct {
	db *pgxpool.Pool
}

func NewOrganizationRepository(db *pgxpool.Pool) portsrepo.OrganizationRepository {
	return &PgxOrganizationRepository{db: db}
}

// Ensure PgxOrganizationRepository implements portsrepo.OrganizationRepository
var _ portsrepo.OrganizationRepository = (*PgxOrganizationRepository)(nil)

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, address, created_at
		FROM organizations
		WHERE organization_id = $1;
	`
	var org domain.Organization
	err := r.db.QueryRow(ctx, query, organizationID).Scan(
		&org.OrganizationID,
		&org.Name,
		&org.Address,
		&org.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by ID %s: %w", organizationID, err)
	}
	return &org, nil
}
