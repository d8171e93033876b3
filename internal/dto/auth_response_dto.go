package dto

import "time"

// LoginResponse represents the response for a successful login. The same
// token is also set as an HttpOnly session cookie.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
