package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	UserID        string         `db:"user_id"`
	Email         string         `db:"email"`
	Name          string         `db:"name"`
	LastName      string         `db:"last_name"`
	PasswordHash  sql.NullString `db:"password_hash"`
	EmailVerified sql.NullTime   `db:"email_verified"`
	Role          string         `db:"role"`
	CreatedAt     time.Time      `db:"created_at"`
}
