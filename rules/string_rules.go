package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/zoobzio/formz"
)

// Required fails when the string is empty after trimming whitespace.
func Required() formz.Rule[string] {
	return func(_ context.Context, value string) (string, error) {
		if strings.TrimSpace(value) == "" {
			return "field is required", nil
		}
		return "", nil
	}
}

// MinLength fails when the string is shorter than min characters.
func MinLength(min int) formz.Rule[string] {
	return func(_ context.Context, value string) (string, error) {
		if len(value) < min {
			return fmt.Sprintf("must be at least %d characters long", min), nil
		}
		return "", nil
	}
}

// MaxLength fails when the string is longer than max characters.
func MaxLength(max int) formz.Rule[string] {
	return func(_ context.Context, value string) (string, error) {
		if len(value) > max {
			return fmt.Sprintf("must be at most %d characters long", max), nil
		}
		return "", nil
	}
}

// Length fails unless the string is exactly n characters long.
func Length(n int) formz.Rule[string] {
	return func(_ context.Context, value string) (string, error) {
		if len(value) != n {
			return fmt.Sprintf("must be exactly %d characters long", n), nil
		}
		return "", nil
	}
}

// Pattern fails with message when the string does not match re.
func Pattern(re *regexp.Regexp, message string) formz.Rule[string] {
	return func(_ context.Context, value string) (string, error) {
		if !re.MatchString(value) {
			return message, nil
		}
		return "", nil
	}
}
