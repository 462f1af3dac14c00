package handler

import (
	"log/slog"
	"net/http"

	"nexstock/internal/delivery/http/middleware"
	"nexstock/internal/delivery/http/response"
	"nexstock/internal/domain/entity"
	"nexstock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userSvc usecase.UserUsecase
	logger  *slog.Logger
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserSvc usecase.UserUsecase
	Logger  *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userSvc: params.UserSvc, logger: params.Logger}
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// SyncSession records an interactive sign-in: first sign-in creates the user
// document, later ones refresh lastLogin.
func (h *UserHandler) SyncSession(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authentication required")
	}

	user, err := h.userSvc.SyncSignIn(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Session synchronized")
}

// Me returns the authenticated user's document.
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, user, "")
}

// SetRole assigns a role to the target user. Admin only.
func (h *UserHandler) SetRole(c echo.Context) error {
	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.userSvc.SetRole(c.Request().Context(), c.Param("id"), entity.Role(req.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role updated successfully")
}
