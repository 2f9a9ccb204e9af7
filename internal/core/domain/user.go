package domain

import "time"

// UserRole distinguishes organization admins from standard users.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// User belongs to exactly one organization. The admin user is created atomically
// with its organization during checkout reconciliation.
type User struct {
	UserID         string    `json:"userID"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Role           UserRole  `json:"role"`
	OrganizationID string    `json:"organizationID"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AuthUser is the identity resolved from an incoming request. It is what the
// entitlement guard consumes; it never carries credentials.
type AuthUser struct {
	UserID         string
	OrganizationID string
	Role           UserRole
}
