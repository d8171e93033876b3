package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/SscSPs/invoicing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTokenRepository stores both token kinds. Each kind has its own table
// with identical columns.
type PgxTokenRepository struct {
	BaseRepository
}

func newPgxTokenRepository(db *pgxpool.Pool) portsrepo.TokenRepository {
	return &PgxTokenRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TokenRepository = (*PgxTokenRepository)(nil)

func tokenTable(kind domain.TokenKind) (string, error) {
	switch kind {
	case domain.TokenVerification:
		return "verification_tokens", nil
	case domain.TokenPasswordReset:
		return "password_reset_tokens", nil
	}
	return "", fmt.Errorf("unknown token kind %q", kind)
}

func (r *PgxTokenRepository) ReplaceToken(ctx context.Context, kind domain.TokenKind, token domain.Token) error {
	table, err := tokenTable(kind)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelToken(token)
	if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE lower(email) = lower($1);`, m.Email); err != nil {
		return fmt.Errorf("failed to delete previous %s token: %w", kind, err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO `+table+` (token_id, email, token, expires) VALUES ($1, $2, $3, $4);`,
		m.TokenID, m.Email, m.Token, m.Expires); err != nil {
		return fmt.Errorf("failed to save %s token: %w", kind, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTokenRepository) ConsumeToken(ctx context.Context, kind domain.TokenKind, value string) (*domain.Token, error) {
	table, err := tokenTable(kind)
	if err != nil {
		return nil, err
	}

	var m models.Token
	err = r.Pool.QueryRow(ctx,
		`DELETE FROM `+table+` WHERE token = $1 RETURNING token_id, email, token, expires;`, value).
		Scan(&m.TokenID, &m.Email, &m.Token, &m.Expires)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to consume %s token: %w", kind, err)
	}

	t := mapping.ToDomainToken(m)
	return &t, nil
}

func (r *PgxTokenRepository) DeleteExpiredTokens(ctx context.Context, kind domain.TokenKind, now time.Time) (int64, error) {
	table, err := tokenTable(kind)
	if err != nil {
		return 0, err
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM `+table+` WHERE expires <= $1;`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired %s tokens: %w", kind, err)
	}
	return cmdTag.RowsAffected(), nil
}
