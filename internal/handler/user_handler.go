package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/service"
)

// UserHandler serves the current user and the admin user directory.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) Me(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), caller.UserID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary Get user by id
// @Description Resolves a gate log's matched_user_id. A dangling id is a 404.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, users)
}
