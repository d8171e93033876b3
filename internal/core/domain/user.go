package domain

import (
	"strings"
	"time"
)

// UserRole is the authorization role of a user.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// AccountState is the position of a user in the registration lifecycle.
// An unregistered email simply has no User row.
type AccountState string

const (
	AccountPendingVerification AccountState = "PENDING_VERIFICATION"
	AccountVerified            AccountState = "VERIFIED"
)

// User represents a user of the application in the domain.
type User struct {
	UserID        string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	LastName      string     `json:"lastName"`
	PasswordHash  string     `json:"-"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Role          UserRole   `json:"role"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// State reports whether the user has completed email verification.
func (u User) State() AccountState {
	if u.EmailVerified == nil || u.PasswordHash == "" {
		return AccountPendingVerification
	}
	return AccountVerified
}

// Identity returns the authenticated identity carried in sessions for u.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, Name: u.Name, LastName: u.LastName, Role: u.Role}
}

// Identity is the authenticated caller of a write operation. It is passed
// explicitly from the transport layer to every service that records a creator.
type Identity struct {
	UserID   string   `json:"id"`
	Name     string   `json:"name"`
	LastName string   `json:"lastName"`
	Role     UserRole `json:"role"`
}

// DisplayName is "name lastName", trimmed when either part is empty.
func (i Identity) DisplayName() string {
	return strings.TrimSpace(i.Name + " " + i.LastName)
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// UserHistoryItem is a user row of the user-history listing.
type UserHistoryItem struct {
	User
	InvoiceCount int `json:"invoiceCount"`
}

// GoogleUserInfo holds the claims extracted from a validated Google ID token.
type GoogleUserInfo struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}
