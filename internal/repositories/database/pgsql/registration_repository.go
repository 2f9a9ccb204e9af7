package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitall-hq/vitall_backend/internal/apperrors"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	portsrepo "github.com/vitall-hq/vitall_backend/internal/core/ports/repositories"
)

type PgxRegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) portsrepo.RegistrationRepository {
	return &PgxRegistrationRepository{db: db}
}

// Ensure PgxRegistrationRepository implements portsrepo.RegistrationRepository
var _ portsrepo.RegistrationRepository = (*PgxRegistrationRepository)(nil)

// CreateSignup writes the organization, its admin user, the subscription and
// the initial grants in a single transaction. The unique email constraint is
// the race arbiter: the losing writer of a concurrent reconciliation gets
// apperrors.ErrDuplicate and nothing committed.
func (r *PgxRegistrationRepository) CreateSignup(ctx context.Context, org domain.Organization, user domain.User, sub domain.Subscription, grants []domain.SubscriptionModule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin signup transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orgQuery := `
		INSERT INTO organizations (organization_id, name, address, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, orgQuery, org.OrganizationID, org.Name, org.Address, org.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert organization: %w", err)
	}

	userQuery := `
		INSERT INTO users (user_id, email, password_hash, first_name, last_name, role, organization_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := tx.Exec(ctx, userQuery,
		user.UserID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Role,
		user.OrganizationID,
		user.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user email already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	subQuery := `
		INSERT INTO subscriptions (subscription_id, organization_id, status, start_date, monthly_price,
			external_subscription_ref, external_customer_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := tx.Exec(ctx, subQuery,
		sub.SubscriptionID,
		sub.OrganizationID,
		sub.Status,
		sub.StartDate,
		sub.MonthlyPrice,
		sub.ExternalSubscriptionRef,
		sub.ExternalCustomerRef,
		sub.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("organization already subscribed: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert subscription: %w", err)
	}

	grantQuery := `
		INSERT INTO subscription_modules (subscription_id, module_id, added_at)
		VALUES ($1, $2, $3);
	`
	for _, grant := range grants {
		if _, err := tx.Exec(ctx, grantQuery, grant.SubscriptionID, grant.ModuleID, grant.AddedAt); err != nil {
			return fmt.Errorf("failed to insert module grant %s: %w", grant.ModuleID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit signup transaction: %w", err)
	}
	return nil
}
