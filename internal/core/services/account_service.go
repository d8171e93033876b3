package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/SscSPs/invoicing_app/internal/validation"
	"github.com/google/uuid"
)

const defaultAccountTokenTTL = time.Hour

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	userRepo  portsrepo.UserRepositoryFacade
	tokenRepo portsrepo.TokenRepository
	mailer    portssvc.Mailer
	tokenTTL  time.Duration
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountTokenTTL sets the lifetime of verification and reset tokens.
func WithAccountTokenTTL(ttl time.Duration) AccountServiceOption {
	return func(s *accountService) {
		if ttl > 0 {
			s.tokenTTL = ttl
		}
	}
}

// WithAccountClock replaces the clock used for token expiry.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.clock = now
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(
	userRepo portsrepo.UserRepositoryFacade,
	tokenRepo portsrepo.TokenRepository,
	mailer portssvc.Mailer,
	options ...AccountServiceOption,
) portssvc.AccountSvcFacade {
	svc := &accountService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		tokenTTL:  defaultAccountTokenTTL,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *accountService) Register(ctx context.Context, email, name, lastName string) (*domain.User, error) {
	req := dto.RegisterRequest{
		Email:    normalizeEmail(email),
		Name:     strings.TrimSpace(name),
		LastName: strings.TrimSpace(lastName),
	}
	if res := validation.Validate(req); !res.OK() {
		return nil, res.Err()
	}

	_, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, err
	}

	user := domain.User{
		UserID:    uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		LastName:  req.LastName,
		Role:      domain.RoleUser,
		CreatedAt: s.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user")
		}
		return nil, err
	}

	if err := s.sendVerification(ctx, user.Email); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User registered, verification pending", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *accountService) ConfirmAccount(ctx context.Context, token, password string) error {
	if res := validation.Validate(dto.ConfirmAccountRequest{Token: token, Password: password}); !res.OK() {
		return res.Err()
	}

	stored, err := s.consumeToken(ctx, domain.TokenVerification, token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, stored.Email)
	if err != nil {
		return err
	}

	verifiedAt := s.Now()
	if err := s.storePassword(ctx, user.UserID, password, &verifiedAt); err != nil {
		return err
	}

	s.LogInfo(ctx, "Account verified", slog.String("user_id", user.UserID))
	return nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	req := dto.LoginRequest{Email: normalizeEmail(email), Password: password}
	if res := validation.Validate(req); !res.OK() {
		return nil, res.Err()
	}

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}

	if user.State() != domain.AccountVerified {
		if err := s.sendVerification(ctx, user.Email); err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "Login of unverified account, verification re-sent", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrEmailNotVerified
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	req := dto.ResetPasswordRequest{Email: normalizeEmail(email)}
	if res := validation.Validate(req); !res.OK() {
		return res.Err()
	}

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	// Reset is for verified accounts only; pending ones finish verification first.
	if user.State() != domain.AccountVerified {
		if err := s.sendVerification(ctx, user.Email); err != nil {
			return err
		}
		s.LogInfo(ctx, "Password reset for unverified account, verification re-sent", slog.String("user_id", user.UserID))
		return apperrors.ErrEmailNotVerified
	}

	value, err := s.issueToken(ctx, domain.TokenPasswordReset, user.Email)
	if err != nil {
		return err
	}
	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, value); err != nil {
		s.LogError(ctx, err, "Failed to send password reset email")
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func (s *accountService) SetNewPassword(ctx context.Context, token, password string) error {
	if res := validation.Validate(dto.NewPasswordRequest{Token: token, Password: password}); !res.OK() {
		return res.Err()
	}

	stored, err := s.consumeToken(ctx, domain.TokenPasswordReset, token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, stored.Email)
	if err != nil {
		return err
	}
	if user.State() != domain.AccountVerified {
		return apperrors.ErrEmailNotVerified
	}

	if err := s.storePassword(ctx, user.UserID, password, nil); err != nil {
		return err
	}

	s.LogInfo(ctx, "Password reset", slog.String("user_id", user.UserID))
	return nil
}

func (s *accountService) LoginWithGoogle(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	if info == nil || info.Email == "" || !info.EmailVerified {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(info.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.State() != domain.AccountVerified {
		return nil, apperrors.ErrEmailNotVerified
	}
	return user, nil
}

// issueToken replaces any token of kind held by email with a fresh one.
func (s *accountService) issueToken(ctx context.Context, kind domain.TokenKind, email string) (string, error) {
	token := domain.Token{
		TokenID: uuid.NewString(),
		Email:   email,
		Token:   uuid.NewString(),
		Expires: s.Now().Add(s.tokenTTL),
	}
	if err := s.tokenRepo.ReplaceToken(ctx, kind, token); err != nil {
		s.LogError(ctx, err, "Failed to store token", slog.String("kind", string(kind)))
		return "", err
	}
	return token.Token, nil
}

func (s *accountService) sendVerification(ctx context.Context, email string) error {
	value, err := s.issueToken(ctx, domain.TokenVerification, email)
	if err != nil {
		return err
	}
	if err := s.mailer.SendVerificationEmail(ctx, email, value); err != nil {
		s.LogError(ctx, err, "Failed to send verification email")
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// consumeToken takes a token out of the store and purges expired tokens of
// its kind. A consumed token cannot be used again even if the caller fails
// afterwards.
func (s *accountService) consumeToken(ctx context.Context, kind domain.TokenKind, value string) (*domain.Token, error) {
	now := s.Now()

	stored, err := s.tokenRepo.ConsumeToken(ctx, kind, value)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if purged, perr := s.tokenRepo.DeleteExpiredTokens(ctx, kind, now); perr != nil {
		s.LogError(ctx, perr, "Failed to purge expired tokens", slog.String("kind", string(kind)))
	} else if purged > 0 {
		s.LogDebug(ctx, "Purged expired tokens", slog.String("kind", string(kind)), slog.Int64("count", purged))
	}

	if err != nil {
		return nil, fmt.Errorf("%w: unknown token", apperrors.ErrNotFound)
	}
	if stored.IsExpired(now) {
		return nil, apperrors.ErrTokenExpired
	}
	return stored, nil
}

func (s *accountService) storePassword(ctx context.Context, userID, password string, verifiedAt *time.Time) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.SetPassword(ctx, userID, hash, verifiedAt); err != nil {
		s.LogError(ctx, err, "Failed to store password", slog.String("user_id", userID))
		return err
	}
	return nil
}
