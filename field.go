package formz

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/pipz"
)

// Field tracks one input's value, interaction state, and validation state.
//
// A Field is constructed with NewField and configured with chainable
// methods before first use. All methods are safe for concurrent use;
// validation results are serialized by a per-field generation counter so
// only the result of the most recent request is ever committed.
type Field[T any] struct {
	name     string
	pipeline pipz.Chainable[*Check[T]]

	// Instance configuration. Set via chainable methods before first use.
	validateOnChange   bool
	validateOnBlur     bool
	debounce           time.Duration
	syncMode           bool
	clock              clockz.Clock
	metrics            MetricsProvider
	transform          func(T) T
	compare            func(a, b T) bool
	onValueChange      func(T)
	onValidationChange func(valid bool, message string)
	history            *messageRing

	status     atomic.Int32
	generation atomic.Uint64

	mu            sync.Mutex
	rules         []Rule[T]
	value         T
	initial       T
	touched       bool
	visited       bool
	focused       bool
	disabled      bool
	errMsg        string
	hasErr        bool
	validating    bool
	validatingGen uint64
	pendingCancel chan struct{}
	closed        bool
}

// FieldState is a point-in-time snapshot of a Field's observable state.
type FieldState[T any] struct {
	Value        T
	InitialValue T
	Touched      bool
	Visited      bool
	Focused      bool
	Dirty        bool
	Pristine     bool
	Error        string
	HasError     bool
	Validating   bool
	Valid        bool
	Invalid      bool
	Disabled     bool
	Status       Status
}

// NewField creates a Field tracking a value of type T.
//
// The field starts pristine at the initial value with no rules. Rules and
// behavior are configured with chainable methods:
//
//	email := formz.NewField("email", "").
//	    Rules(rules.Required(), rules.Email()).
//	    Debounce(300 * time.Millisecond)
//
// Pipeline options (With*) wrap rule evaluation with middleware such as
// timeouts and retries for asynchronous rules:
//
//	username := formz.NewField("username", "",
//	    formz.WithTimeout[string](2*time.Second),
//	    formz.WithRetry[string](3),
//	).Rules(rules.Required(), uniqueUsername)
func NewField[T any](name string, initial T, opts ...Option[T]) *Field[T] {
	f := &Field[T]{
		name:             name,
		validateOnChange: true,
		validateOnBlur:   true,
		clock:            clockz.RealClock,
		value:            initial,
		initial:          initial,
	}

	terminal := pipz.Effect(rulesID, func(ctx context.Context, chk *Check[T]) error {
		msg, err := evaluate(ctx, f.snapshotRules(), chk.Value)
		if err != nil {
			return err
		}
		chk.Message = msg
		return nil
	})
	f.pipeline = buildPipeline(terminal, opts)
	f.status.Store(int32(StatusIdle))

	return f
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Rules sets the ordered rule list for the field.
// Rules are evaluated in order and the first non-empty failure message
// wins. Must be called before first use.
func (f *Field[T]) Rules(rules ...Rule[T]) *Field[T] {
	f.rules = rules
	return f
}

// ValidateOnChange controls whether value changes via OnChange trigger
// validation. Default: true. Must be called before first use.
func (f *Field[T]) ValidateOnChange(enabled bool) *Field[T] {
	f.validateOnChange = enabled
	return f
}

// ValidateOnBlur controls whether OnBlur triggers an immediate
// (non-debounced) validation. Default: true. Must be called before first use.
func (f *Field[T]) ValidateOnBlur(enabled bool) *Field[T] {
	f.validateOnBlur = enabled
	return f
}

// Debounce sets the debounce duration for change-triggered validation.
// Rapid successive edits within this duration coalesce into a single
// validation run of the latest value. Zero (the default) validates every
// change. Must be called before first use.
func (f *Field[T]) Debounce(d time.Duration) *Field[T] {
	f.debounce = d
	return f
}

// SyncMode forces handler-triggered validation to run inline in the
// calling goroutine, bypassing debounce. This makes tests deterministic.
// Must be called before first use.
func (f *Field[T]) SyncMode() *Field[T] {
	f.syncMode = true
	return f
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic debounce testing.
// Must be called before first use.
func (f *Field[T]) Clock(clock clockz.Clock) *Field[T] {
	f.clock = clock
	return f
}

// Metrics sets a metrics provider for observability integration.
// Must be called before first use.
func (f *Field[T]) Metrics(provider MetricsProvider) *Field[T] {
	f.metrics = provider
	return f
}

// Transform sets a function applied to every incoming value before it is
// stored (OnChange and SetValue). Must be called before first use.
func (f *Field[T]) Transform(fn func(T) T) *Field[T] {
	f.transform = fn
	return f
}

// CompareWith sets the equality function used for the dirty/pristine
// computation. Default: reflect.DeepEqual. Must be called before first use.
func (f *Field[T]) CompareWith(fn func(a, b T) bool) *Field[T] {
	f.compare = fn
	return f
}

// OnValueChange sets a callback invoked after every value mutation.
// Must be called before first use.
func (f *Field[T]) OnValueChange(fn func(T)) *Field[T] {
	f.onValueChange = fn
	return f
}

// OnValidationChange sets a callback invoked after every committed
// validation result with the verdict and failure message (empty when
// valid). Superseded results do not fire the callback.
// Must be called before first use.
func (f *Field[T]) OnValidationChange(fn func(valid bool, message string)) *Field[T] {
	f.onValidationChange = fn
	return f
}

// ErrorHistorySize sets the number of recent validation failures to
// retain. Use 0 (default) to disable history. Must be called before
// first use.
func (f *Field[T]) ErrorHistorySize(n int) *Field[T] {
	f.history = newMessageRing(n)
	return f
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

// Name returns the field's identifier.
func (f *Field[T]) Name() string {
	return f.name
}

// Value returns the current value.
func (f *Field[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// InitialValue returns the dirty/pristine baseline.
func (f *Field[T]) InitialValue() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initial
}

// Touched reports whether the field has received and then lost focus,
// or was touched by Validate or SetTouched.
func (f *Field[T]) Touched() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched
}

// Visited reports whether the field has received focus at least once.
// Unlike Touched, it is not affected by blur.
func (f *Field[T]) Visited() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visited
}

// Focused reports whether the field currently has focus.
func (f *Field[T]) Focused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused
}

// Disabled reports whether value-change requests are currently ignored.
func (f *Field[T]) Disabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.disabled
}

// Dirty reports whether the current value differs from the initial value
// under the configured comparison function.
func (f *Field[T]) Dirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.equalLocked(f.value, f.initial)
}

// Pristine is the logical negation of Dirty.
func (f *Field[T]) Pristine() bool {
	return !f.Dirty()
}

// ErrorMessage returns the current validation failure message and true,
// or the empty string and false if the field has no error.
func (f *Field[T]) ErrorMessage() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg, f.hasErr
}

// Validating reports whether a validation run is in flight.
func (f *Field[T]) Validating() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validating
}

// Valid reports whether the field has no error and no validation in
// flight. Note Valid and Invalid are not strict complements: a field
// that is validating is neither valid nor invalid.
func (f *Field[T]) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.hasErr && !f.validating
}

// Invalid reports whether the field currently carries an error.
func (f *Field[T]) Invalid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasErr
}

// Status returns the current validation status of the field.
func (f *Field[T]) Status() Status {
	return Status(f.status.Load())
}

// ErrorHistory returns recent committed validation failures, oldest
// first. Returns nil unless enabled via ErrorHistorySize.
func (f *Field[T]) ErrorHistory() []Failure {
	return f.history.all()
}

// Snapshot returns a point-in-time view of the field's observable state.
func (f *Field[T]) Snapshot() FieldState[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	dirty := !f.equalLocked(f.value, f.initial)
	return FieldState[T]{
		Value:        f.value,
		InitialValue: f.initial,
		Touched:      f.touched,
		Visited:      f.visited,
		Focused:      f.focused,
		Dirty:        dirty,
		Pristine:     !dirty,
		Error:        f.errMsg,
		HasError:     f.hasErr,
		Validating:   f.validating,
		Valid:        !f.hasErr && !f.validating,
		Invalid:      f.hasErr,
		Disabled:     f.disabled,
		Status:       Status(f.status.Load()),
	}
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// OnChange stores a new value from user input and, if ValidateOnChange is
// enabled, requests a (possibly debounced) validation of it.
// The call is a no-op while the field is disabled.
func (f *Field[T]) OnChange(ctx context.Context, value T) {
	f.mu.Lock()
	if f.disabled || f.closed {
		f.mu.Unlock()
		return
	}
	if f.transform != nil {
		value = f.transform(value)
	}
	f.value = value
	validate := f.validateOnChange
	cb := f.onValueChange
	f.mu.Unlock()

	capitan.Emit(ctx, FieldChanged,
		KeyField.Field(f.name),
	)
	if f.metrics != nil {
		f.metrics.OnValueChange()
	}
	if cb != nil {
		cb(value)
	}
	if validate {
		f.requestValidation(ctx, value, false)
	}
}

// OnBlur marks the field touched and unfocused and, if ValidateOnBlur is
// enabled, requests an immediate (non-debounced) validation of the
// current value. An immediate request preempts any pending debounced run.
func (f *Field[T]) OnBlur(ctx context.Context) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.touched = true
	f.focused = false
	validate := f.validateOnBlur
	value := f.value
	f.mu.Unlock()

	capitan.Emit(ctx, FieldBlurred,
		KeyField.Field(f.name),
	)
	if validate {
		f.requestValidation(ctx, value, true)
	}
}

// OnFocus marks the field visited and focused. It never triggers
// validation.
func (f *Field[T]) OnFocus(ctx context.Context) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.visited = true
	f.focused = true
	f.mu.Unlock()

	capitan.Emit(ctx, FieldFocused,
		KeyField.Field(f.name),
	)
}

// SetValue stores a value programmatically. Unlike OnChange it ignores
// the disabled flag and never triggers validation. The transform and
// OnValueChange callback still apply.
func (f *Field[T]) SetValue(ctx context.Context, value T) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	if f.transform != nil {
		value = f.transform(value)
	}
	f.value = value
	cb := f.onValueChange
	f.mu.Unlock()

	capitan.Emit(ctx, FieldChanged,
		KeyField.Field(f.name),
	)
	if f.metrics != nil {
		f.metrics.OnValueChange()
	}
	if cb != nil {
		cb(value)
	}
}

// SetInitialValue reassigns the dirty/pristine baseline and the current
// value to v, resets touched, and clears any error. Use it to populate a
// field with late-arriving data without it registering as a user edit.
// Any pending or in-flight validation is superseded.
func (f *Field[T]) SetInitialValue(ctx context.Context, value T) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.cancelPendingLocked()
	f.generation.Add(1)
	f.initial = value
	f.value = value
	f.touched = false
	f.errMsg = ""
	f.hasErr = false
	f.validating = false
	f.mu.Unlock()

	f.transitionStatus(ctx, StatusIdle)
	capitan.Emit(ctx, FieldChanged,
		KeyField.Field(f.name),
	)
}

// Reset restores the field to its initial state: the initial value, no
// interaction flags, no error, empty failure history. Any pending or
// in-flight validation is
// superseded and its result discarded.
func (f *Field[T]) Reset(ctx context.Context) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.cancelPendingLocked()
	f.generation.Add(1)
	f.value = f.initial
	f.touched = false
	f.visited = false
	f.focused = false
	f.errMsg = ""
	f.hasErr = false
	f.validating = false
	f.mu.Unlock()

	f.history.clear()
	f.transitionStatus(ctx, StatusIdle)
	capitan.Emit(ctx, FieldReset,
		KeyField.Field(f.name),
	)
}

// Validate forces an immediate validation run of the current value in the
// calling goroutine, marks the field touched, and returns this run's
// verdict. The verdict is returned even if a concurrent newer request
// superseded the commit. Validation of a disabled field is permitted:
// disabled guards mutation, not inspection.
func (f *Field[T]) Validate(ctx context.Context) bool {
	f.mu.Lock()
	if f.closed {
		valid := !f.hasErr && !f.validating
		f.mu.Unlock()
		return valid
	}
	f.touched = true
	f.cancelPendingLocked()
	gen := f.generation.Add(1)
	value := f.value
	f.mu.Unlock()

	return f.run(ctx, value, gen)
}

// SetError overwrites the field's error state directly, bypassing rule
// evaluation. Use it for failures produced elsewhere, such as
// server-returned errors. An empty message clears the error.
func (f *Field[T]) SetError(ctx context.Context, message string) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.errMsg = message
	f.hasErr = message != ""
	f.mu.Unlock()

	if message != "" {
		f.history.push(Failure{Message: message, At: f.clock.Now()})
		f.transitionStatus(ctx, StatusInvalid)
		capitan.Emit(ctx, ValidationFailed,
			KeyField.Field(f.name),
			KeyMessage.Field(message),
		)
		return
	}
	f.transitionStatus(ctx, StatusIdle)
}

// SetTouched sets the touched flag directly.
func (f *Field[T]) SetTouched(touched bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = touched
}

// SetDisabled sets the disabled flag. While disabled, OnChange requests
// are silently ignored; all other operations remain available.
func (f *Field[T]) SetDisabled(disabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disabled = disabled
}

// Close tears the field down: the pending debounce timer (if any) is
// cancelled and in-flight validation results are discarded, so no
// callback can mutate state after disposal. Further operations are no-ops.
func (f *Field[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.cancelPendingLocked()
	f.generation.Add(1)
}

// -----------------------------------------------------------------------------
// Validation runner
// -----------------------------------------------------------------------------

// requestValidation issues a new validation request for value, superseding
// any earlier request. Immediate requests preempt pending debounced runs;
// debounced requests replace the pending timer.
func (f *Field[T]) requestValidation(ctx context.Context, value T, immediate bool) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.cancelPendingLocked()
	gen := f.generation.Add(1)

	if !immediate && !f.syncMode && f.debounce > 0 {
		cancel := make(chan struct{})
		f.pendingCancel = cancel
		timer := f.clock.NewTimer(f.debounce)
		f.mu.Unlock()

		go func() {
			select {
			case <-timer.C():
				f.run(ctx, value, gen)
			case <-cancel:
				timer.Stop()
			case <-ctx.Done():
				timer.Stop()
			}
		}()
		return
	}
	f.mu.Unlock()

	if f.syncMode {
		f.run(ctx, value, gen)
		return
	}
	go f.run(ctx, value, gen)
}

// cancelPendingLocked cancels the pending debounce timer, if any.
// Caller must hold f.mu.
func (f *Field[T]) cancelPendingLocked() {
	if f.pendingCancel != nil {
		close(f.pendingCancel)
		f.pendingCancel = nil
	}
}

// snapshotRules returns the current rule list.
func (f *Field[T]) snapshotRules() []Rule[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rules
}

// run evaluates the field's rules against value under generation gen and
// commits the result if the generation is still current. Returns this
// run's verdict regardless of whether it was committed.
func (f *Field[T]) run(ctx context.Context, value T, gen uint64) bool {
	start := f.clock.Now()

	f.mu.Lock()
	if f.closed || f.generation.Load() != gen {
		valid := !f.hasErr && !f.validating
		f.mu.Unlock()
		return valid
	}
	hasRules := len(f.rules) > 0
	if hasRules {
		// Validating stays false when no rules are configured.
		f.validating = true
		f.validatingGen = gen
	}
	f.mu.Unlock()

	if !hasRules {
		return f.commit(ctx, gen, "", nil, start)
	}

	f.transitionStatus(ctx, StatusValidating)
	capitan.Emit(ctx, ValidationStarted,
		KeyField.Field(f.name),
		KeyGeneration.Field(int(gen)),
	)

	chk := &Check[T]{Field: f.name, Value: value}
	processed, err := f.pipeline.Process(ctx, chk)

	var msg string
	if err == nil {
		msg = processed.Message
	}
	return f.commit(ctx, gen, msg, err, start)
}

// commit applies a settled validation result to field state, unless a
// newer request superseded it, in which case state is left untouched.
// Terminal settles always resolve the run's verdict; a rule malfunction
// degrades to GenericValidationMessage.
func (f *Field[T]) commit(ctx context.Context, gen uint64, msg string, runErr error, start time.Time) bool {
	if runErr != nil {
		msg = GenericValidationMessage
	}
	valid := msg == ""

	f.mu.Lock()
	if f.closed || f.generation.Load() != gen {
		// Clear the in-flight flag unless a newer run has claimed it;
		// a superseding request parked on a debounce timer has not.
		if f.validatingGen == gen {
			f.validating = false
		}
		f.mu.Unlock()
		capitan.Emit(ctx, ValidationSuperseded,
			KeyField.Field(f.name),
			KeyGeneration.Field(int(gen)),
		)
		if f.metrics != nil {
			f.metrics.OnValidationSuperseded()
		}
		return valid
	}
	f.validating = false
	f.errMsg = msg
	f.hasErr = !valid
	cb := f.onValidationChange
	f.mu.Unlock()

	elapsed := f.clock.Since(start)
	if valid {
		f.transitionStatus(ctx, StatusValid)
		capitan.Emit(ctx, ValidationPassed,
			KeyField.Field(f.name),
			KeyGeneration.Field(int(gen)),
		)
		if f.metrics != nil {
			f.metrics.OnValidationSuccess(elapsed)
		}
	} else {
		f.history.push(Failure{Message: msg, At: f.clock.Now()})
		f.transitionStatus(ctx, StatusInvalid)
		fields := []capitan.Field{
			KeyField.Field(f.name),
			KeyGeneration.Field(int(gen)),
			KeyMessage.Field(msg),
		}
		if runErr != nil {
			fields = append(fields, KeyError.Field(runErr.Error()))
		}
		capitan.Emit(ctx, ValidationFailed, fields...)
		if f.metrics != nil {
			f.metrics.OnValidationFailure(elapsed)
		}
	}

	if cb != nil {
		cb(valid, msg)
	}
	return valid
}

// transitionStatus updates the status and emits a change event if it
// actually changed.
func (f *Field[T]) transitionStatus(ctx context.Context, newStatus Status) {
	oldStatus := Status(f.status.Swap(int32(newStatus)))
	if oldStatus == newStatus {
		return
	}
	capitan.Emit(ctx, FieldStatusChanged,
		KeyField.Field(f.name),
		KeyOldStatus.Field(oldStatus.String()),
		KeyNewStatus.Field(newStatus.String()),
	)
	if f.metrics != nil {
		f.metrics.OnStatusChange(oldStatus, newStatus)
	}
}

// equalLocked compares two values with the configured comparison.
// Caller must hold f.mu.
func (f *Field[T]) equalLocked(a, b T) bool {
	if f.compare != nil {
		return f.compare(a, b)
	}
	return reflect.DeepEqual(a, b)
}
