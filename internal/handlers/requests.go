package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator is the echo.Validator for form DTOs. Requests that
// implement normalizer are cleaned up before their tags are checked, and
// failures name fields by their form key.
type RequestValidator struct {
	validate *validator.Validate
}

type normalizer interface {
	normalize()
}

// NewValidator returns a RequestValidator.
func NewValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("form"), ","); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i any) error {
	if n, ok := i.(normalizer); ok {
		n.normalize()
	}
	return rv.validate.Struct(i)
}

// NewsletterRequest is the script-free newsletter form.
type NewsletterRequest struct {
	Email string `form:"newsletter_email" validate:"required,email,max=254"`
}

func (r *NewsletterRequest) normalize() {
	r.Email = strings.TrimSpace(r.Email)
}
