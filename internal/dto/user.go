package dto

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// CreateUserRequest is the admin payload for inviting a user. It follows
// the same pending-verification path as public registration.
type CreateUserRequest RegisterRequest

// UserHistoryResponse is a row of GET /api/user-history.
type UserHistoryResponse struct {
	UserResponse
	InvoiceCount int `json:"invoiceCount"`
}

// ToUserHistoryResponse converts user history items to DTOs.
func ToUserHistoryResponse(items []domain.UserHistoryItem) []UserHistoryResponse {
	out := make([]UserHistoryResponse, len(items))
	for i := range items {
		out[i] = UserHistoryResponse{
			UserResponse: ToUserResponse(&items[i].User),
			InvoiceCount: items[i].InvoiceCount,
		}
	}
	return out
}
