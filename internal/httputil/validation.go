package httputil

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is returned by BindData when the request body
// does not satisfy the binding rules of the target struct.
type ValidationError struct {
	messages []string
}

func newValidationError(errs validator.ValidationErrors) ValidationError {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, ValidationErrorToText(e))
	}

	return ValidationError{messages: messages}
}

func (e ValidationError) Error() string {
	return strings.Join(e.messages, ", ")
}

// ValidationErrorToText converts a single failed validation to a message.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
