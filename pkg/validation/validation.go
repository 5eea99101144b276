// Package validation checks request payloads against their declared
// constraints before anything reaches the data access layer. Constraints
// are expressed as `validate` struct tags; failures come back as a list of
// field-level issues suitable for a 400 response body.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue is one field-level validation failure.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries all issues found in a single payload.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Field + ": " + issue.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsError returns the *Error inside err, if any.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so issues match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check validates the payload and returns a *Error listing every failed
// field, or nil when the payload is valid.
func Check(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		// Invalid use of the validator itself (non-struct payload).
		return err
	}

	issues := make([]Issue, 0, len(ferrs))
	for _, fe := range ferrs {
		issues = append(issues, Issue{Field: fe.Field(), Message: issueMessage(fe)})
	}
	return &Error{Issues: issues}
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "eq":
		if fe.Kind() == reflect.Bool {
			return "You must acknowledge the terms"
		}
		return fmt.Sprintf("%s must equal %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
