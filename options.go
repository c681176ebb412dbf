package formz

import (
	"context"
	"time"

	"github.com/zoobzio/pipz"
)

// Option configures the validation pipeline of a Field.
// Pipeline options wrap the rule-evaluation terminal with middleware for
// timeout, retry, and other reliability patterns. This matters for
// asynchronous rules (uniqueness checks, remote lookups) where a hung or
// flaky dependency should degrade to a validation failure instead of a
// stuck field.
//
// Instance configuration (debounce, callbacks, transform, etc.) is
// handled via chainable methods on the Field.
type Option[T any] func(pipz.Chainable[*Check[T]]) pipz.Chainable[*Check[T]]

// Pipeline stage identities.
var (
	rulesID        = pipz.NewIdentity("rules", "Rule evaluation terminal")
	timeoutID      = pipz.NewIdentity("timeout", "Deadline on rule evaluation")
	retryID        = pipz.NewIdentity("retry", "Immediate retry of rule malfunctions")
	backoffID      = pipz.NewIdentity("backoff", "Exponential backoff retry of rule malfunctions")
	errorHandlerID = pipz.NewIdentity("error-handler", "Rule malfunction observer")
	middlewareID   = pipz.NewIdentity("middleware", "Middleware sequence around rule evaluation")
)

// buildPipeline wraps a terminal with pipeline options.
func buildPipeline[T any](terminal pipz.Chainable[*Check[T]], opts []Option[T]) pipz.Chainable[*Check[T]] {
	pipeline := terminal
	for _, opt := range opts {
		pipeline = opt(pipeline)
	}
	return pipeline
}

// WithTimeout wraps the pipeline with a deadline.
// If rule evaluation takes longer than the specified duration, the run
// fails and the field degrades to invalid with GenericValidationMessage.
func WithTimeout[T any](d time.Duration) Option[T] {
	return func(p pipz.Chainable[*Check[T]]) pipz.Chainable[*Check[T]] {
		return pipz.NewTimeout(timeoutID, p, d)
	}
}

// WithRetry wraps the pipeline with retry logic.
// Rule malfunctions (not validation failures) are retried immediately up
// to maxAttempts times. For exponential backoff between retries, use
// WithBackoff instead.
func WithRetry[T any](maxAttempts int) Option[T] {
	return func(p pipz.Chainable[*Check[T]]) pipz.Chainable[*Check[T]] {
		return pipz.NewRetry(retryID, p, maxAttempts)
	}
}

// WithBackoff wraps the pipeline with exponential backoff retry logic.
// Failed evaluations are retried with increasing delays: baseDelay,
// 2*baseDelay, 4*baseDelay, etc.
func WithBackoff[T any](maxAttempts int, baseDelay time.Duration) Option[T] {
	return func(p pipz.Chainable[*Check[T]]) pipz.Chainable[*Check[T]] {
		return pipz.NewBackoff(backoffID, p, maxAttempts, baseDelay)
	}
}

// WithErrorHandler adds error observation to the pipeline.
// Rule malfunctions are passed to the handler for logging, metrics, or
// alerting, but the run still degrades to GenericValidationMessage.
// Use this for observability, not recovery.
func WithErrorHandler[T any](handler pipz.Chainable[*pipz.Error[*Check[T]]]) Option[T] {
	return func(p pipz.Chainable[*Check[T]]) pipz.Chainable[*Check[T]] {
		return pipz.NewHandle(errorHandlerID, p, handler)
	}
}

// WithMiddleware wraps the pipeline with a sequence of processors.
// Processors execute in order, with the rule-evaluation terminal last.
// Use UseEffect to create observers, or provide custom pipz.Chainable
// implementations directly.
func WithMiddleware[T any](processors ...pipz.Chainable[*Check[T]]) Option[T] {
	return func(p pipz.Chainable[*Check[T]]) pipz.Chainable[*Check[T]] {
		all := make([]pipz.Chainable[*Check[T]], 0, len(processors)+1)
		all = append(all, processors...)
		all = append(all, p)
		return pipz.NewSequence(middlewareID, all...)
	}
}

// UseEffect creates a processor that observes the check without altering
// the verdict. Returning an error aborts the run as a rule malfunction.
// Use for logging, metrics, or notifications.
func UseEffect[T any](name string, fn func(context.Context, *Check[T]) error) pipz.Chainable[*Check[T]] {
	return pipz.Effect(pipz.NewIdentity(name, ""), fn)
}

// UseFilter wraps a processor with a condition.
// If the condition returns false, the check passes through unchanged.
func UseFilter[T any](name string, condition func(context.Context, *Check[T]) bool, processor pipz.Chainable[*Check[T]]) pipz.Chainable[*Check[T]] {
	return pipz.NewFilter(pipz.NewIdentity(name, ""), condition, processor)
}
