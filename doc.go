// Package formz provides reactive state management and validation for form
// fields.
//
// The core type is Field, which tracks one input's value, interaction state
// (touched, visited, focused), and validation state, and runs an ordered
// list of rules against candidate values with optional debouncing.
//
// # Field
//
// A Field processes a value change through a pipeline:
//
//	Change → Transform → Store → Debounce → Rules → Commit
//
// Rules are evaluated in order and the first non-empty failure message
// wins; remaining rules are skipped. A result is committed only if no
// newer validation request has been issued for the field since it started,
// so out-of-order completions of asynchronous rules can never clobber the
// verdict for the latest value.
//
// # Rules
//
// A rule is any function judging a value:
//
//	func(ctx context.Context, value T) (string, error)
//
// A non-empty message is a validation failure shown to the user. A non-nil
// error means the rule itself malfunctioned (network failure, timeout);
// it degrades to a fixed generic message rather than propagating. The
// rules subpackage provides common constructors (Required, Email,
// MinLength, ...).
//
// # Validation Status
//
// Each Field reports one of four statuses:
//
//   - Idle: no validation has run yet
//   - Validating: a run is in flight
//   - Valid: the last committed run passed
//   - Invalid: the last committed run failed
//
// # Forms
//
// Form composes many fields keyed by name and exposes bulk operations:
// ValidateAll, ResetAll, Values/SetValues, Errors, and aggregate
// Dirty/Valid/Disabled folds.
//
// # Example
//
//	password := formz.NewField("password", "").
//	    Rules(rules.Required(), rules.MinLength(8))
//
//	confirm := formz.NewField("confirm", "").
//	    Rules(rules.MatchesField(password.Value, "passwords do not match")).
//	    ValidateOnChange(false)
//
//	form := formz.NewForm(password, confirm)
//
//	if form.ValidateAll(ctx) {
//	    save(form.Values())
//	}
package formz
