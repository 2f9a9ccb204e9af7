package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
)

type PgxSubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepository {
	return &PgxSubscriptionRepository{db: db}
}

// Ensure PgxSubscriptionRepository implements portsrepo.SubscriptionRepository
var _ portsrepo.SubscriptionRepository = (*PgxSubscriptionRepository)(nil)

const subscriptionColumns = `subscription_id, organization_id, status, start_date, monthly_price,
	external_subscription_ref, external_customer_ref, created_at`

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var s domain.Subscription
	err := row.Scan(
		&s.SubscriptionID,
		&s.OrganizationID,
		&s.Status,
		&s.StartDate,
		&s.MonthlyPrice,
		&s.ExternalSubscriptionRef,
		&s.ExternalCustomerRef,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSubscriptionRepository) FindSubscriptionByOrganizationID(ctx context.Context, organizationID string) (*domain.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE organization_id = $1;
	`
	sub, err := scanSubscription(r.db.QueryRow(ctx, query, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription for organization %s: %w", organizationID, err)
	}
	return sub, nil
}

// FindSubscriptionWithModulesByOrganizationID loads the subscription and its
// grants in one query so the entitlement guard sees a consistent snapshot.
func (r *PgxSubscriptionRepository) FindSubscriptionWithModulesByOrganizationID(ctx context.Context, organizationID string) (*domain.SubscriptionWithModules, error) {
	query := `
		SELECT s.subscription_id, s.organization_id, s.status, s.start_date, s.monthly_price,
			s.external_subscription_ref, s.external_customer_ref, s.created_at,
			sm.module_id, m.name, sm.added_at
		FROM subscriptions s
		LEFT JOIN subscription_modules sm ON sm.subscription_id = s.subscription_id
		LEFT JOIN modules m ON m.module_id = sm.module_id
		WHERE s.organization_id = $1;
	`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, wrapQueryErr("failed to query subscription with modules", err)
	}
	defer rows.Close()

	var result *domain.SubscriptionWithModules
	for rows.Next() {
		var s domain.Subscription
		var moduleID, moduleName *string
		var addedAt *time.Time
		err := rows.Scan(
			&s.SubscriptionID,
			&s.OrganizationID,
			&s.Status,
			&s.StartDate,
			&s.MonthlyPrice,
			&s.ExternalSubscriptionRef,
			&s.ExternalCustomerRef,
			&s.CreatedAt,
			&moduleID,
			&moduleName,
			&addedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		if result == nil {
			result = &domain.SubscriptionWithModules{Subscription: s, Modules: []domain.SubscriptionModule{}}
		}
		if moduleID != nil && moduleName != nil {
			grant := domain.SubscriptionModule{
				SubscriptionID: s.SubscriptionID,
				ModuleID:       *moduleID,
				ModuleName:     *moduleName,
			}
			if addedAt != nil {
				grant.AddedAt = *addedAt
			}
			result.Modules = append(result.Modules, grant)
		}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", rows.Err())
	}
	if result == nil {
		return nil, apperrors.ErrNotFound
	}
	return result, nil
}

func (r *PgxSubscriptionRepository) ListModulesForSubscription(ctx context.Context, subscriptionID string) ([]domain.Module, error) {
	query := `
		SELECT m.module_id, m.name, m.category, m.price, m.description, m.created_at
		FROM subscription_modules sm
		JOIN modules m ON m.module_id = sm.module_id
		WHERE sm.subscription_id = $1
		ORDER BY m.category, m.name;
	`
	rows, err := r.db.Query(ctx, query, subscriptionID)
	if err != nil {
		return nil, wrapQueryErr("failed to query subscription modules", err)
	}
	defer rows.Close()

	return collectModules(rows)
}

func (r *PgxSubscriptionRepository) AddSubscriptionModule(ctx context.Context, grant domain.SubscriptionModule) error {
	query := `
		INSERT INTO subscription_modules (subscription_id, module_id, added_at)
		VALUES ($1, $2, $3);
	`
	_, err := r.db.Exec(ctx, query, grant.SubscriptionID, grant.ModuleID, grant.AddedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("module already granted: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add subscription module: %w", err)
	}
	return nil
}

func (r *PgxSubscriptionRepository) RemoveSubscriptionModule(ctx context.Context, subscriptionID, moduleID string) (int64, error) {
	query := `
		DELETE FROM subscription_modules
		WHERE subscription_id = $1 AND module_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, subscriptionID, moduleID)
	if err != nil {
		return 0, fmt.Errorf("failed to remove subscription module: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
