package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "movienuts/internal/errors"
	"movienuts/internal/response"
	"movienuts/internal/service"
	"movienuts/internal/validation"
)

// UserHandler handles public profile and community endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List godoc
// @Summary List community members
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} response.Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, total, err := h.userService.List(c.Request().Context(), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		return httpError(err)
	}

	return response.OK(c, users, func(v interface{}) interface{} {
		return map[string]interface{}{"users": v, "total": total}
	})
}

// Get godoc
// @Summary Get a public profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.NewHTTPError(http.StatusBadRequest, "invalid user id", "BadRequest").ToErrorResponse())
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return response.OK(c, user)
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Description Only bio and profile picture are updatable.
// @Tags users
// @Accept json
// @Produce json
// @Param request body validation.ProfileUpdateInput true "Profile fields"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req validation.ProfileUpdateInput
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidInputShape)
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), subjectID(c), req)
	if err != nil {
		return httpError(err)
	}

	return response.OK(c, user)
}
