package mapping

import (
	"database/sql"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:        d.UserID,
		Email:         d.Email,
		Name:          d.Name,
		LastName:      d.LastName,
		PasswordHash:  sql.NullString{String: d.PasswordHash, Valid: d.PasswordHash != ""},
		EmailVerified: nullTime(d.EmailVerified),
		Role:          string(d.Role),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:        m.UserID,
		Email:         m.Email,
		Name:          m.Name,
		LastName:      m.LastName,
		PasswordHash:  m.PasswordHash.String,
		EmailVerified: timePtr(m.EmailVerified),
		Role:          domain.UserRole(m.Role),
		CreatedAt:     m.CreatedAt,
	}
}
