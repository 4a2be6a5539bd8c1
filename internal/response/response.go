package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// TokenCookieMaxAge is the client-side cookie lifetime. It deliberately
// exceeds the token's own 15-minute validity: the token, not the cookie,
// is the source of truth for remaining trust.
const TokenCookieMaxAge = time.Hour

// Envelope is the uniform success body.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"statusCode"`
}

// JSON sends data wrapped in the standard envelope, optionally running it
// through an ordered list of transforms first.
func JSON(c echo.Context, statusCode int, data interface{}, transforms ...func(interface{}) interface{}) error {
	if len(transforms) > 0 {
		data = NewPipe(transforms...).Run(data)
	}
	return c.JSON(statusCode, Envelope{Success: true, Data: data, StatusCode: statusCode})
}

// OK sends a 200 envelope.
func OK(c echo.Context, data interface{}, transforms ...func(interface{}) interface{}) error {
	return JSON(c, http.StatusOK, data, transforms...)
}

// Created sends a 201 envelope.
func Created(c echo.Context, data interface{}, transforms ...func(interface{}) interface{}) error {
	return JSON(c, http.StatusCreated, data, transforms...)
}

// NoContent sends an empty 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// JWT hands a session token to the client inside a hardened cookie:
// httpOnly (no script access), secure (HTTPS only), sameSite strict.
// Only authentication endpoints should call this; anything else would
// overwrite the session cookie.
func JWT(c echo.Context, token string) error {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenCookieMaxAge / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	return c.JSON(http.StatusOK, Envelope{Success: true, StatusCode: http.StatusOK})
}
