// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/entity"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// userView is the response shape for a user. The stored password hash never
// leaves the service.
type userView struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name,omitempty"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// loginView bundles the issued token with the authenticated user.
type loginView struct {
	Token string    `json:"token"`
	User  *userView `json:"user"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &loginView{
		Token: output.Token,
		User:  toUserView(output.User),
	}, "Login successful")
}

// GetProfile handles the request to get the current user's identity as seen
// by the token middleware.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userIDVal := c.Get(middleware.ContextKeyUserID)
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	emailVal, _ := c.Get(middleware.ContextKeyEmail).(string)
	roleVal, _ := c.Get(middleware.ContextKeyRole).(entity.Role)

	return response.Success(c, http.StatusOK, map[string]string{
		"user_id": userID.String(),
		"email":   emailVal,
		"role":    roleVal.String(),
	}, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
