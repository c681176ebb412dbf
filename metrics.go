package formz

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key field events.
type MetricsProvider interface {
	// OnStatusChange is called when a field transitions between statuses.
	OnStatusChange(from, to Status)

	// OnValidationSuccess is called when a validation run commits a
	// passing result. Duration is the time taken to evaluate the rules.
	OnValidationSuccess(duration time.Duration)

	// OnValidationFailure is called when a validation run commits a
	// failure, including rule malfunctions degraded to the generic message.
	OnValidationFailure(duration time.Duration)

	// OnValidationSuperseded is called when a completed run is discarded
	// because a newer request was issued for the same field.
	OnValidationSuperseded()

	// OnValueChange is called when a field's value is mutated.
	OnValueChange()
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStatusChange(_, _ Status)             {}
func (NoOpMetricsProvider) OnValidationSuccess(_ time.Duration)    {}
func (NoOpMetricsProvider) OnValidationFailure(_ time.Duration)    {}
func (NoOpMetricsProvider) OnValidationSuperseded()                {}
func (NoOpMetricsProvider) OnValueChange()                         {}
