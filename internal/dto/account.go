package dto

// RegisterRequest starts the registration of a new account. The password
// is chosen later, when the verification link is confirmed.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"required,min=1,max=50"`
	LastName string `json:"lastName" validate:"required,min=1,max=50"`
}

// LoginRequest holds credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// ConfirmAccountRequest completes verification and sets the first password.
type ConfirmAccountRequest struct {
	Token    string `json:"token" validate:"required,uuid"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ResetPasswordRequest asks for a password reset link.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewPasswordRequest sets a new password using a reset token.
type NewPasswordRequest struct {
	Token    string `json:"token" validate:"required,uuid"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// GoogleCallbackParams are the query parameters Google redirects back with.
type GoogleCallbackParams struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state" binding:"required"`
}

// MessageResponse is returned by auth steps that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}
