// Package contact implements the contact form: field values, per-field
// validation errors and the submission lifecycle.
package contact

import (
	"errors"
	"fmt"
)

// Field names a contact form input.
type Field string

const (
	Name    Field = "name"
	Email   Field = "email"
	Subject Field = "subject"
	Message Field = "message"
)

// AllFields lists the form inputs in display order.
var AllFields = []Field{Name, Email, Subject, Message}

// ErrUnknownField is returned for a field name outside AllFields.
var ErrUnknownField = errors.New("unknown contact field")

// ParseField validates a field name received from the browser.
func ParseField(s string) (Field, error) {
	for _, f := range AllFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Fields holds the current value of every input.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Get returns the value of f.
func (fs Fields) Get(f Field) string {
	switch f {
	case Name:
		return fs.Name
	case Email:
		return fs.Email
	case Subject:
		return fs.Subject
	case Message:
		return fs.Message
	}
	return ""
}

func (fs *Fields) set(f Field, v string) {
	switch f {
	case Name:
		fs.Name = v
	case Email:
		fs.Email = v
	case Subject:
		fs.Subject = v
	case Message:
		fs.Message = v
	}
}

// Errors maps invalid fields to a human-readable message. A field that is
// absent is valid.
type Errors map[Field]string

func (e Errors) clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Snapshot is a copy of a form's state, safe to hand to a renderer.
type Snapshot struct {
	Fields     Fields
	Errors     Errors
	Submitting bool
}

// Form is the state of one contact form. It is not safe for concurrent use.
type Form struct {
	fields     Fields
	errors     Errors
	submitting bool
}

// NewForm returns an empty form with no errors.
func NewForm() *Form {
	return &Form{errors: Errors{}}
}

// Snapshot copies the current state.
func (f *Form) Snapshot() Snapshot {
	return Snapshot{
		Fields:     f.fields,
		Errors:     f.errors.clone(),
		Submitting: f.submitting,
	}
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// Change stores a new value for field. If the field has a recorded error it
// is cleared straight away, without re-running validation. The return value
// reports whether an error was cleared.
func (f *Form) Change(field Field, value string) bool {
	f.fields.set(field, value)
	if _, ok := f.errors[field]; ok {
		delete(f.errors, field)
		return true
	}
	return false
}

// Validate recomputes every rule and replaces the error map with the result,
// discarding any per-field clears made since the last pass. It reports
// whether the form is valid.
func (f *Form) Validate() bool {
	f.errors = Validate(f.fields)
	return len(f.errors) == 0
}

// Begin starts a submission. It validates the form and, when valid, marks it
// as submitting and returns the values to send. It returns false if the form
// is invalid or a submission is already in flight.
func (f *Form) Begin() (Fields, bool) {
	if f.submitting {
		return Fields{}, false
	}
	if !f.Validate() {
		return Fields{}, false
	}
	f.submitting = true
	return f.fields, true
}

// Complete finishes the submission started by Begin. A nil err resets the
// form; a non-nil err keeps the values so the user can retry. Either way the
// form leaves the submitting state. The returned Acknowledgment is what the
// user should be shown.
func (f *Form) Complete(err error) Acknowledgment {
	f.submitting = false
	if err != nil {
		return Acknowledgment{Kind: Failure, Message: FailureMessage}
	}
	f.fields = Fields{}
	f.errors = Errors{}
	return Acknowledgment{Kind: Success, Message: SuccessMessage}
}
