package dto

import (
	"time"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// UserResponse defines the data returned for a user. The password hash never
// leaves the domain layer.
type UserResponse struct {
	UserID         string          `json:"userId"`
	Email          string          `json:"email"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Role           domain.UserRole `json:"role"`
	OrganizationID string          `json:"organizationId"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// UpdateProfileRequest defines the data allowed for updating the caller's own
// profile.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// OrganizationResponse defines the data returned for an organization.
type OrganizationResponse struct {
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Address        string    `json:"address"` // Empty string if null in DB
	CreatedAt      time.Time `json:"createdAt"`
}

// MeResponse pairs the authenticated user with their organization.
type MeResponse struct {
	User         UserResponse         `json:"user"`
	Organization OrganizationResponse `json:"organization"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:         user.UserID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		CreatedAt:      user.CreatedAt,
	}
}

// ToOrganizationResponse converts a domain.Organization to OrganizationResponse DTO
func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	resp := OrganizationResponse{
		OrganizationID: org.OrganizationID,
		Name:           org.Name,
		CreatedAt:      org.CreatedAt,
	}
	if org.Address != nil {
		resp.Address = *org.Address
	}
	return resp
}
