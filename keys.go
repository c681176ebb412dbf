package formz

import "github.com/zoobzio/capitan"

// Field keys for formz events.
var (
	// KeyField is the name of the field an event concerns.
	KeyField = capitan.NewStringKey("field")

	// KeyError is the error or failure message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyMessage is the validation failure message committed to a field.
	KeyMessage = capitan.NewStringKey("message")

	// KeyOldStatus is the previous status before a transition.
	KeyOldStatus = capitan.NewStringKey("old_status")

	// KeyNewStatus is the new status after a transition.
	KeyNewStatus = capitan.NewStringKey("new_status")

	// KeyGeneration is the validation request generation.
	KeyGeneration = capitan.NewIntKey("generation")

	// KeyFieldCount is the number of fields in a form operation.
	KeyFieldCount = capitan.NewIntKey("field_count")
)
