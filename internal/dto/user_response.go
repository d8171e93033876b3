package dto

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

type UserResponse struct {
	UserID        string          `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	LastName      string          `json:"lastName"`
	Role          domain.UserRole `json:"role"`
	EmailVerified bool            `json:"emailVerified"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Email:         user.Email,
		Name:          user.Name,
		LastName:      user.LastName,
		Role:          user.Role,
		EmailVerified: user.EmailVerified != nil,
		CreatedAt:     user.CreatedAt,
	}
}

// MeResponse describes the identity behind the current session.
type MeResponse struct {
	UserID      string          `json:"id"`
	Name        string          `json:"name"`
	LastName    string          `json:"lastName"`
	Role        domain.UserRole `json:"role"`
	DisplayName string          `json:"displayName"`
}

func ToMeResponse(identity domain.Identity) MeResponse {
	return MeResponse{
		UserID:      identity.UserID,
		Name:        identity.Name,
		LastName:    identity.LastName,
		Role:        identity.Role,
		DisplayName: identity.DisplayName(),
	}
}
