package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	apperrors "movienuts/internal/errors"
)

// RegisterInput is the payload accepted by the register schema.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=4,max=20,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=30,nowhitespace"`
}

// LoginInput is the payload accepted by the login schema: the register
// schema restricted to email and password, same per-field rules.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=30,nowhitespace"`
}

// BlogInput is the payload accepted by the blog schema. A client-supplied
// author field is deliberately absent: authorship always comes from the
// verified token subject.
type BlogInput struct {
	Film   map[string]interface{} `json:"film" validate:"required"`
	Rating *float64               `json:"rating" validate:"required,gte=0,lte=5"`
	Title  string                 `json:"title" validate:"required,notblank"`
	Body   string                 `json:"body" validate:"required,notblank"`
}

// ProfileUpdateInput is the payload accepted by the profile-update schema.
type ProfileUpdateInput struct {
	Bio            *string `json:"bio" validate:"omitempty,max=500"`
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,url"`
}

// Validator checks request payloads against their schema and reports every
// field violation at once, never just the first.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom rules the schemas rely on.
func New() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("nowhitespace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t\n\r")
	})

	// Whitespace-only strings satisfy required; notblank closes that gap.
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	// Report violations against the JSON field name clients actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Check validates a bound payload. On failure it returns a
// *errors.ValidationError carrying one issue per violated field.
func (cv *Validator) Check(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return apperrors.ErrInvalidInputShape
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	issues := make([]apperrors.FieldIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, apperrors.FieldIssue{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return &apperrors.ValidationError{Issues: issues}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "alphanum":
		return "only letters and numbers allowed"
	case "nowhitespace":
		return "must not contain whitespace"
	case "notblank":
		return "must not be blank"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
