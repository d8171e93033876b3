package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the account lifecycle endpoints.
type AuthHandler struct {
	accountService portssvc.AccountSvcFacade
	tokenService   portssvc.TokenSvcFacade
	cookieName     string
	secureCookies  bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AccountSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accountService: as,
		tokenService:   ts,
		cookieName:     cfg.SessionCookieName,
		secureCookies:  cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes. Every route
// shares the limiter passed in.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, limit gin.HandlerFunc) {
	h := NewAuthHandler(services.Account, services.TokenService, cfg)
	g := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.Account, services.TokenService, cfg)

	auth := rg.Group("/auth", limit)
	{
		auth.POST("/register", h.Register)
		auth.POST("/verify", h.Verify)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/reset", h.Reset)
		auth.POST("/new-password", h.NewPassword)
		auth.GET("/google/login", g.Login)
		auth.GET("/google/callback", g.Callback)
	}
}

// setSessionCookie stores the session JWT in an HttpOnly cookie that
// expires together with the token.
func setSessionCookie(c *gin.Context, name, token string, expiresAt time.Time, secure bool) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, maxAge, "/", "", secure, true)
}

// Register godoc
// @Summary Register new user
// @Description Creates a pending account and mails a verification link. The password is set on verification.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	user, err := h.accountService.Register(c.Request.Context(), req.Email, req.Name, req.LastName)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Verify godoc
// @Summary Confirm email
// @Description Consumes a verification token and sets the first password.
// @Tags auth
// @Accept json
// @Produce json
// @Param verify body dto.ConfirmAccountRequest true "Token and password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown token"
// @Failure 410 {object} ErrorResponse "Token expired"
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.ConfirmAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.accountService.ConfirmAccount(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err, "Failed to verify account")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Email verified"})
}

// Login godoc
// @Summary User login
// @Description Authenticates a verified user, sets the session cookie and returns the JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Email not verified"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	ctx := c.Request.Context()
	user, err := h.accountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}

	middleware.GetLoggerFromCtx(ctx).Info("User logged in")
	setSessionCookie(c, h.cookieName, token, expiresAt, h.secureCookies)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}

// Logout godoc
// @Summary User logout
// @Description Clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Reset godoc
// @Summary Request password reset
// @Description Mails a password reset link to a verified account. Unverified accounts get a new verification link instead.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetPasswordRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse "Email not verified"
// @Failure 404 {object} ErrorResponse
// @Router /auth/reset [post]
func (h *AuthHandler) Reset(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.accountService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "Failed to request password reset")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password reset email sent"})
}

// NewPassword godoc
// @Summary Set new password
// @Description Consumes a reset token and replaces the password.
// @Tags auth
// @Accept json
// @Produce json
// @Param password body dto.NewPasswordRequest true "Token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown token"
// @Failure 403 {object} ErrorResponse "Email not verified"
// @Failure 410 {object} ErrorResponse "Token expired"
// @Router /auth/new-password [post]
func (h *AuthHandler) NewPassword(c *gin.Context) {
	var req dto.NewPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.accountService.SetNewPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err, "Failed to set new password")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated"})
}
