package rules

import (
	"context"
	"fmt"

	"github.com/zoobzio/formz"
)

// Numeric constrains the numeric rule helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min fails when the value is less than min.
func Min[T Numeric](min T) formz.Rule[T] {
	return func(_ context.Context, value T) (string, error) {
		if value < min {
			return fmt.Sprintf("must be at least %v", min), nil
		}
		return "", nil
	}
}

// Max fails when the value is greater than max.
func Max[T Numeric](max T) formz.Rule[T] {
	return func(_ context.Context, value T) (string, error) {
		if value > max {
			return fmt.Sprintf("must be at most %v", max), nil
		}
		return "", nil
	}
}

// Between fails when the value lies outside [min, max].
func Between[T Numeric](min, max T) formz.Rule[T] {
	return func(_ context.Context, value T) (string, error) {
		if value < min || value > max {
			return fmt.Sprintf("must be between %v and %v", min, max), nil
		}
		return "", nil
	}
}

// NonZero fails when the value equals the zero value of its type.
func NonZero[T comparable]() formz.Rule[T] {
	return func(_ context.Context, value T) (string, error) {
		var zero T
		if value == zero {
			return "field is required", nil
		}
		return "", nil
	}
}

// OneOf fails when the value is not among the allowed choices.
func OneOf[T comparable](choices ...T) formz.Rule[T] {
	return func(_ context.Context, value T) (string, error) {
		for _, c := range choices {
			if value == c {
				return "", nil
			}
		}
		return "must be one of the allowed values", nil
	}
}

// MatchesField fails with message when the value differs from the value
// returned by get, typically another field's Value accessor:
//
//	rules.MatchesField(password.Value, "passwords do not match")
//
// The accessor reads the source field's live value; the dependent field
// is not revalidated automatically when the source changes.
func MatchesField[T comparable](get func() T, message string) formz.Rule[T] {
	return func(_ context.Context, value T) (string, error) {
		if value != get() {
			return message, nil
		}
		return "", nil
	}
}

// When wraps a rule so it only applies while cond returns true.
func When[T any](cond func() bool, rule formz.Rule[T]) formz.Rule[T] {
	return func(ctx context.Context, value T) (string, error) {
		if !cond() {
			return "", nil
		}
		return rule(ctx, value)
	}
}
