package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrDuplicateUser is returned when registration collides with an
	// existing username or email.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match
	// the stored hash. Kept distinct from ErrUserNotFound internally; the
	// login handler collapses both into ErrLoginFailed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrLoginFailed is the collapsed login failure shown to clients in
	// place of ErrUserNotFound or ErrInvalidCredentials, so responses stay
	// byte-identical whether the email or the password was wrong.
	ErrLoginFailed = errors.New("incorrect email or password")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned when a token fails signature or shape checks.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrUnauthenticated is returned when a protected operation is reached
	// without a usable token.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrHashFormat is returned when a stored password digest is malformed.
	// Never confused with a wrong password.
	ErrHashFormat = errors.New("malformed password digest")
	// ErrInvalidInputShape is returned when a request payload is not a
	// well-formed object at all, before any schema check.
	ErrInvalidInputShape = errors.New("request body is not an object")
	// ErrMovieNotFound is returned when no catalog entry matches.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrCatalogUnavailable is returned when the upstream catalog cannot be
	// reached (circuit open or request failure).
	ErrCatalogUnavailable = errors.New("catalog service unavailable")
)

// ValidationError aggregates every field violation found in one payload.
type ValidationError struct {
	Issues []FieldIssue
}

// FieldIssue is a single field-level violation.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.Field+": "+issue.Message)
	}
	return strings.Join(msgs, "; ")
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	StatusCode int          `json:"statusCode"`
	ErrorType  string       `json:"errorType"`
	Issues     []FieldIssue `json:"issues,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	ErrorType  string
	Issues     []FieldIssue
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, errorType string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		ErrorType:  errorType,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Success:    false,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		ErrorType:  e.ErrorType,
		Issues:     e.Issues,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Internal detail never
// leaks: unclassified errors become a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		httpErr := NewHTTPError(http.StatusBadRequest, validationErr.Error(), "ValidationError")
		httpErr.Issues = validationErr.Issues
		return httpErr
	}

	switch {
	case errors.Is(err, ErrInvalidInputShape):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "BadRequest")
	case errors.Is(err, ErrDuplicateUser):
		return NewHTTPError(http.StatusConflict, err.Error(), "Conflict")
	case errors.Is(err, ErrLoginFailed), errors.Is(err, ErrInvalidCredentials):
		// Enumeration resistance: one message regardless of root cause.
		return NewHTTPError(http.StatusNotFound, ErrLoginFailed.Error(), "NotFound")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "user not found", "NotFound")
	case errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, "invalid or expired token", "Unauthorized")
	case errors.Is(err, ErrMovieNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NotFound")
	case errors.Is(err, ErrCatalogUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "BadGateway")
	default:
		return NewHTTPError(http.StatusInternalServerError, "something went wrong", "ServerError")
	}
}
