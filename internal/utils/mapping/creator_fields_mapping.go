package mapping

import (
	"database/sql"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelCreatorFields converts domain creator fields to their column form.
func ToModelCreatorFields(d domain.CreatorFields) models.CreatorFields {
	return models.CreatorFields{
		UserID:       d.CreatorUserID,
		UserOriginal: d.CreatorDisplayName,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainCreatorFields converts creator columns to domain creator fields.
func ToDomainCreatorFields(m models.CreatorFields) domain.CreatorFields {
	return domain.CreatorFields{
		CreatorUserID:      m.UserID,
		CreatorDisplayName: m.UserOriginal,
		CreatedAt:          m.CreatedAt,
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
