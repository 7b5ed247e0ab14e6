package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// spaceClass lists the characters browsers treat as whitespace in both
// String.prototype.trim and the regexp \s class. RE2's \s only covers the
// ASCII subset.
const spaceClass = `\t\n\v\f\r \x{A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// emailPattern is a loose shape check: one "@" and one "." with non-blank,
// @-free runs around them. It is not the RFC 5322 address grammar.
var emailPattern = regexp.MustCompile(`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`)

// MinMessageLength is the minimum length of the untrimmed message, counted
// in UTF-16 code units the way the browser counts it.
const MinMessageLength = 10

// isSpace reports whether r is in spaceClass.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xA0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// trim removes leading and trailing whitespace as a browser's trim() does.
func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// length counts UTF-16 code units.
func length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// input mirrors Fields with the rules each field must satisfy. validator
// stops at the first failing tag of a field, which gives "required" priority
// over the shape and length checks.
type input struct {
	Name    string `validate:"notblank"`
	Email   string `validate:"notblank,contactemail"`
	Subject string `validate:"notblank"`
	Message string `validate:"notblank,minlength=10"`
}

var messages = map[Field]map[string]string{
	Name:    {"notblank": "Name is required"},
	Email:   {"notblank": "Email is required", "contactemail": "Please enter a valid email address"},
	Subject: {"notblank": "Subject is required"},
	Message: {"notblank": "Message is required", "minlength": "Message should be at least 10 characters long"},
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// rules returns the shared validator, configured on first use. A
// *validator.Validate caches struct metadata and is safe for concurrent use.
func rules() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.String && trim(fl.Field().String()) != ""
		}); err != nil {
			panic(err)
		}
		if err := v.RegisterValidation("minlength", func(fl validator.FieldLevel) bool {
			want, err := strconv.Atoi(fl.Param())
			return err == nil && fl.Field().Kind() == reflect.String && length(fl.Field().String()) >= want
		}); err != nil {
			panic(err)
		}
		if err := v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.String && emailPattern.MatchString(fl.Field().String())
		}); err != nil {
			panic(err)
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return strings.ToLower(f.Name)
		})
		validate = v
	})
	return validate
}

// Validate checks every field independently and returns the resulting error
// map. It depends only on f; an empty map means the fields are valid.
func Validate(f Fields) Errors {
	errs := Errors{}
	err := rules().Struct(input{
		Name:    f.Name,
		Email:   f.Email,
		Subject: f.Subject,
		Message: f.Message,
	})
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable if the rule set itself is malformed.
		panic(err)
	}
	for _, fe := range verrs {
		field := Field(fe.Field())
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			continue
		}
		errs[field] = msg
	}
	return errs
}
