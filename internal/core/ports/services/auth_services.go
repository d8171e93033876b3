package services

import (
	"context"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// TokenSvcFacade issues session tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a session JWT carrying the identity of user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCode exchanges an authorization code and returns the claims of the validated ID token.
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error)
}

// AccountSvcFacade drives the account lifecycle: registration, email
// verification, login and password reset.
type AccountSvcFacade interface {
	// Register creates a pending user and mails a verification link.
	Register(ctx context.Context, email, name, lastName string) (*domain.User, error)
	// ConfirmAccount consumes a verification token and sets the first password.
	ConfirmAccount(ctx context.Context, token, password string) error
	// Login checks credentials of a verified account. For a pending account it
	// re-issues the verification mail and returns apperrors.ErrEmailNotVerified.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// RequestPasswordReset mails a reset link to an existing account.
	RequestPasswordReset(ctx context.Context, email string) error
	// SetNewPassword consumes a reset token and replaces the password.
	SetNewPassword(ctx context.Context, token, password string) error
	// LoginWithGoogle matches a Google account to an existing verified user.
	LoginWithGoogle(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)
}

// Mailer delivers account emails. Callers wait for the send to complete
// before reporting success.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, token string) error
	SendPasswordResetEmail(ctx context.Context, email, token string) error
}
