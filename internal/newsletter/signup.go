// Package newsletter implements the footer newsletter field.
package newsletter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyEmail is returned by Subscribe when the field is blank. Browsers
// normally block this through the input's required attribute.
var ErrEmptyEmail = errors.New("newsletter email is empty")

// Acknowledgment formats the message shown after subscribing.
func Acknowledgment(email string) string {
	return fmt.Sprintf("Thank you for subscribing with: %s", email)
}

// Signup is the state of one newsletter field.
type Signup struct {
	email string
}

// New returns an empty field.
func New() *Signup {
	return &Signup{}
}

// Email returns the current field value.
func (s *Signup) Email() string {
	return s.email
}

// Input stores the field value as typed.
func (s *Signup) Input(email string) {
	s.email = email
}

// Subscribe consumes the field value: it returns the address that was
// subscribed and clears the field.
func (s *Signup) Subscribe() (string, error) {
	email := s.email
	if strings.TrimSpace(email) == "" {
		return "", ErrEmptyEmail
	}
	s.email = ""
	return email, nil
}
