package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	apperrors "movienuts/internal/errors"
	"movienuts/internal/response"
	"movienuts/internal/service"
	"movienuts/internal/validation"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account and issues a session token in an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.RegisterInput true "Registration data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req validation.RegisterInput
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidInputShape)
	}

	_, token, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	return response.JWT(c, token)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and issues a session token in an HTTP-only cookie. Unknown email and wrong password produce identical responses.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.LoginInput true "Login credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req validation.LoginInput
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidInputShape)
	}

	_, token, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		// Unknown email and wrong password must stay indistinguishable
		// externally; only this endpoint collapses them.
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrInvalidCredentials) {
			err = apperrors.ErrLoginFailed
		}
		return httpError(err)
	}

	return response.JWT(c, token)
}
