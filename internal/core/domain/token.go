package domain

import "time"

// TokenKind distinguishes the two single-use email token tables.
type TokenKind string

const (
	TokenVerification  TokenKind = "verification"
	TokenPasswordReset TokenKind = "password_reset"
)

// Token is a single-use, time-limited value mailed to a user.
// At most one token of each kind exists per email.
type Token struct {
	TokenID string    `json:"id"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// IsExpired reports whether the token is no longer usable at now.
// A token is expired exactly at its expiry instant.
func (t Token) IsExpired(now time.Time) bool {
	return !t.Expires.After(now)
}
