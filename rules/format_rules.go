package rules

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/formz"
)

// validate is the shared validator instance backing format rules.
var validate = validator.New()

// Email fails when the string is not a valid email address.
func Email() formz.Rule[string] {
	return tagRule("email", "must be a valid email address")
}

// URL fails when the string is not a valid URL.
func URL() formz.Rule[string] {
	return tagRule("url", "must be a valid URL")
}

// UUID fails when the string is not a valid UUID.
func UUID() formz.Rule[string] {
	return tagRule("uuid", "must be a valid UUID")
}

// tagRule adapts a go-playground/validator tag check to a Rule.
// A failed check is a validation failure, never a rule malfunction.
func tagRule(tag, message string) formz.Rule[string] {
	return func(_ context.Context, value string) (string, error) {
		if err := validate.Var(value, tag); err != nil {
			return message, nil
		}
		return "", nil
	}
}
