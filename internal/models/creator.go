package models

import "time"

// CreatorFields are the creator columns shared by categories, departments and invoices.
type CreatorFields struct {
	UserID       string    `db:"user_id"`
	UserOriginal string    `db:"user_original"`
	CreatedAt    time.Time `db:"created_at"`
}
