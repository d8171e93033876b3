package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService    portssvc.UserSvcFacade
	accountService portssvc.AccountSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, as portssvc.AccountSvcFacade) *userHandler {
	return &userHandler{
		userService:    us,
		accountService: as,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := newUserHandler(userService, accountService)

	rg.GET("/me", h.getMe)
	rg.GET("/user-history", h.listUserHistory)
	rg.POST("/users", middleware.RequireRole(domain.RoleAdmin), h.createUser)
}

// getMe godoc
// @Summary Current user
// @Description Returns the identity carried by the session.
// @Tags users
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *userHandler) getMe(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToMeResponse(identity))
}

// listUserHistory godoc
// @Summary User history
// @Description Lists users, newest first, with the number of invoices each created.
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserHistoryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /user-history [get]
func (h *userHandler) listUserHistory(c *gin.Context) {
	items, err := h.userService.ListUserHistory(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserHistoryResponse(items))
}

// createUser godoc
// @Summary Create a new user
// @Description Admin only. Creates a pending account and mails a verification link, like public registration.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create user request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	user, err := h.accountService.Register(c.Request.Context(), req.Email, req.Name, req.LastName)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}
	logger.Info("User created by admin", slog.String("created_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
