package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// TokenRepository stores verification and password reset tokens.
type TokenRepository interface {
	// ReplaceToken deletes any token of kind for token.Email and stores token.
	ReplaceToken(ctx context.Context, kind domain.TokenKind, token domain.Token) error

	// ConsumeToken deletes the token with the given value and returns it.
	// Expired tokens are returned too; the caller checks Expires.
	// Of two concurrent calls for the same value only one gets the token.
	ConsumeToken(ctx context.Context, kind domain.TokenKind, value string) (*domain.Token, error)

	// DeleteExpiredTokens removes every token of kind that expired at or before now.
	DeleteExpiredTokens(ctx context.Context, kind domain.TokenKind, now time.Time) (int64, error)
}
