package formz

import "github.com/zoobzio/capitan"

// Field interaction signals.
var (
	// FieldChanged is emitted when a field's value changes via OnChange or SetValue.
	FieldChanged = capitan.NewSignal(
		"formz.field.changed",
		"Field value changed",
	)

	// FieldFocused is emitted when a field receives focus.
	FieldFocused = capitan.NewSignal(
		"formz.field.focused",
		"Field received focus",
	)

	// FieldBlurred is emitted when a field loses focus.
	FieldBlurred = capitan.NewSignal(
		"formz.field.blurred",
		"Field lost focus",
	)

	// FieldReset is emitted when a field is restored to its initial state.
	FieldReset = capitan.NewSignal(
		"formz.field.reset",
		"Field reset to initial state",
	)

	// FieldStatusChanged is emitted when a field transitions between statuses.
	FieldStatusChanged = capitan.NewSignal(
		"formz.field.status.changed",
		"Field status transition",
	)
)

// Validation signals.
var (
	// ValidationStarted is emitted when a validation run begins.
	ValidationStarted = capitan.NewSignal(
		"formz.validation.started",
		"Validation run started",
	)

	// ValidationPassed is emitted when a validation run commits a passing result.
	ValidationPassed = capitan.NewSignal(
		"formz.validation.passed",
		"Validation run passed",
	)

	// ValidationFailed is emitted when a validation run commits a failure.
	ValidationFailed = capitan.NewSignal(
		"formz.validation.failed",
		"Validation run failed",
	)

	// ValidationSuperseded is emitted when a completed run is discarded
	// because a newer request was issued for the same field.
	ValidationSuperseded = capitan.NewSignal(
		"formz.validation.superseded",
		"Stale validation result discarded",
	)
)

// Form signals.
var (
	// FormValidated is emitted when a bulk validation of all fields settles.
	FormValidated = capitan.NewSignal(
		"formz.form.validated",
		"Form-wide validation settled",
	)

	// FormReset is emitted when all fields in a form are reset.
	FormReset = capitan.NewSignal(
		"formz.form.reset",
		"Form reset",
	)
)
