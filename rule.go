package formz

import "context"

// GenericValidationMessage is the failure message stored when a rule
// malfunctions (returns an error) instead of producing a verdict.
// The original error is observable via signals and pipeline error
// handlers; it is never surfaced to end users.
const GenericValidationMessage = "validation error occurred"

// Rule judges a candidate value for a field.
//
// A non-empty message is a validation failure and is stored verbatim in
// the field's error state. An empty message means the value passed.
//
// A non-nil error means the rule itself failed to run (network error,
// timeout, bad dependency). The field degrades to invalid with
// GenericValidationMessage; the error never propagates to the caller.
//
// Rules may block: asynchronous checks are plain functions that perform
// their work before returning. The context carries cancellation from
// pipeline middleware such as WithTimeout.
type Rule[T any] func(ctx context.Context, value T) (string, error)

// Check carries a candidate value through the validation pipeline.
// The terminal stage evaluates the field's rules and records the verdict
// in Message; middleware stages may observe or enrich the check before
// rules run.
type Check[T any] struct {
	// Field is the name of the field being validated.
	Field string

	// Value is the candidate value under validation.
	Value T

	// Message is the first failing rule's message, or empty if all
	// rules passed. Populated by the terminal rules stage.
	Message string
}

// evaluate runs rules in order against value, stopping at the first
// failure. Returns the failure message ("" if all passed) and any rule
// malfunction.
func evaluate[T any](ctx context.Context, rs []Rule[T], value T) (string, error) {
	for _, r := range rs {
		msg, err := r(ctx, value)
		if err != nil {
			return "", err
		}
		if msg != "" {
			return msg, nil
		}
	}
	return "", nil
}
