// Package rules provides built-in validation rule constructors for formz
// fields.
//
// Every exported function constructs and returns a formz.Rule; there is
// no hidden global state beyond a shared validator instance, so the
// package is stateless, allocation-light, and goroutine-safe. Rules
// short-circuit inside the field's runner: order Required before format
// rules so empty values fail with the required message.
//
// Format rules (Email, URL, UUID) delegate to go-playground/validator.
// Cross-field rules (MatchesField) read the other field's live value
// through an accessor closure; re-validating the dependent field when
// the source changes is the caller's responsibility.
package rules
