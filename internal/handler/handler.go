package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "movienuts/internal/errors"
)

// httpError translates a domain error into an echo HTTP error carrying the
// standard error envelope. Handlers never branch on error strings.
func httpError(err error) *echo.HTTPError {
	mapped := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
}

// subjectID returns the verified token subject placed in context by the
// JWT middleware. Empty means the route was reached without a usable token.
func subjectID(c echo.Context) string {
	subject, _ := c.Get("user").(string)
	return subject
}
