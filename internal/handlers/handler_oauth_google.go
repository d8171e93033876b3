package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateMaxAge = 5 * 60

	// Frontend pages the callback lands on.
	loginRedirectPath   = "/pregled"
	loginFailedPath     = "/prijava"
	loginErrNotLinked   = "OAuthAccountNotLinked"
	loginErrOAuthFailed = "OAuthCallbackError"
)

// GoogleOAuthHandler drives the browser redirect flow of Google sign-in.
// Only existing verified accounts can sign in; no account is created here.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	accountService     portssvc.AccountSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cookieName         string
	secureCookies      bool
	frontendBaseURL    string
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	accountService portssvc.AccountSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		accountService:     accountService,
		tokenService:       tokenService,
		cookieName:         cfg.SessionCookieName,
		secureCookies:      cfg.IsProduction,
		frontendBaseURL:    cfg.FrontendBaseURL,
	}
}

// Login godoc
// @Summary Start Google sign-in
// @Description Redirects to Google's consent screen with a CSRF state cookie.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		respondError(c, err, "Failed to start Google sign-in")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// Callback godoc
// @Summary Google sign-in callback
// @Description Checks the state, exchanges the code, signs in the matching verified user and redirects to the frontend.
// @Tags oauth
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 307
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var params dto.GoogleCallbackParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Google callback without code or state", slog.String("error", err.Error()))
		h.redirectFailure(c, loginErrOAuthFailed)
		return
	}

	expected, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)
	if err != nil || expected == "" || expected != params.State {
		logger.Warn("Google callback state mismatch")
		h.redirectFailure(c, loginErrOAuthFailed)
		return
	}

	info, err := h.googleOAuthService.ExchangeCode(ctx, params.Code)
	if err != nil {
		logger.Error("Failed to exchange Google authorization code", slog.String("error", err.Error()))
		h.redirectFailure(c, loginErrOAuthFailed)
		return
	}

	user, err := h.accountService.LoginWithGoogle(ctx, info)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) ||
			errors.Is(err, apperrors.ErrEmailNotVerified) ||
			errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Info("Google account not linked to a verified user", slog.String("email", info.Email))
			h.redirectFailure(c, loginErrNotLinked)
			return
		}
		logger.Error("Google sign-in failed", slog.String("error", err.Error()))
		h.redirectFailure(c, loginErrOAuthFailed)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		h.redirectFailure(c, loginErrOAuthFailed)
		return
	}

	logger.Info("User signed in with Google", slog.String("user_id", user.UserID))
	setSessionCookie(c, h.cookieName, token, expiresAt, h.secureCookies)
	c.Redirect(http.StatusTemporaryRedirect, h.frontendBaseURL+loginRedirectPath)
}

func (h *GoogleOAuthHandler) redirectFailure(c *gin.Context, code string) {
	c.Redirect(http.StatusTemporaryRedirect, h.frontendBaseURL+loginFailedPath+"?error="+url.QueryEscape(code))
}
