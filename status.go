package formz

// Status represents the validation status of a Field.
type Status int32

const (
	// StatusIdle indicates no validation has run for the field yet.
	StatusIdle Status = iota

	// StatusValidating indicates a validation run is in flight.
	StatusValidating

	// StatusValid indicates the last committed validation run passed.
	StatusValid

	// StatusInvalid indicates the last committed validation run failed
	// or an error was set manually.
	StatusInvalid
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusValidating:
		return "validating"
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}
