package repositories

import (
	"context"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUserName changes the display name fields only; email, role and
	// organization are immutable through this port.
	UpdateUserName(ctx context.Context, userID, firstName, lastName string) error
}
