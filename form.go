package formz

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zoobzio/capitan"
)

// FormField is the type-erased view of a *Field[T] that a Form composes.
// It exposes the operations a form fans out to its children; typed access
// stays on the concrete *Field[T].
type FormField interface {
	Name() string
	Validate(ctx context.Context) bool
	Reset(ctx context.Context)
	Close()
	Dirty() bool
	Valid() bool
	Disabled() bool
	SetDisabled(disabled bool)
	ErrorMessage() (string, bool)

	anyValue() any
	setAnyValue(ctx context.Context, v any) error
	setAnyInitialValue(ctx context.Context, v any) error
}

// Form composes multiple fields keyed by name and exposes bulk operations
// over them. No invariant couples different fields' values; cross-field
// rules read other fields through accessor closures supplied at rule
// construction and must be re-triggered by the caller when the source
// field changes.
type Form struct {
	fields map[string]FormField
	order  []string
}

// NewForm creates a Form over the given fields, keyed by field name.
// A later field with a duplicate name replaces the earlier one.
func NewForm(fields ...FormField) *Form {
	fm := &Form{
		fields: make(map[string]FormField, len(fields)),
	}
	for _, fld := range fields {
		if _, exists := fm.fields[fld.Name()]; !exists {
			fm.order = append(fm.order, fld.Name())
		}
		fm.fields[fld.Name()] = fld
	}
	return fm
}

// Field returns the field registered under name.
func (fm *Form) Field(name string) (FormField, bool) {
	fld, ok := fm.fields[name]
	return fld, ok
}

// Names returns the field names in registration order.
func (fm *Form) Names() []string {
	names := make([]string, len(fm.order))
	copy(names, fm.order)
	return names
}

// ValidateAll validates every field concurrently and returns true only if
// all of them resolve valid. All validations are requested before any
// result is awaited, so every field gets touched together; there is no
// early short-circuit.
func (fm *Form) ValidateAll(ctx context.Context) bool {
	results := make([]bool, len(fm.order))

	var wg sync.WaitGroup
	wg.Add(len(fm.order))
	for i, name := range fm.order {
		go func(i int, fld FormField) {
			defer wg.Done()
			results[i] = fld.Validate(ctx)
		}(i, fm.fields[name])
	}
	wg.Wait()

	valid := true
	for _, ok := range results {
		valid = valid && ok
	}

	capitan.Emit(ctx, FormValidated,
		KeyFieldCount.Field(len(fm.order)),
	)
	return valid
}

// ResetAll restores every field to its initial state.
func (fm *Form) ResetAll(ctx context.Context) {
	for _, name := range fm.order {
		fm.fields[name].Reset(ctx)
	}
	capitan.Emit(ctx, FormReset,
		KeyFieldCount.Field(len(fm.order)),
	)
}

// Values returns a snapshot of every field's current value keyed by name.
func (fm *Form) Values() map[string]any {
	values := make(map[string]any, len(fm.fields))
	for name, fld := range fm.fields {
		values[name] = fld.anyValue()
	}
	return values
}

// SetValues programmatically sets values on the named fields. Keys that
// do not match a configured field are ignored. A value whose type does
// not match the field's type yields an error; other fields are still set.
func (fm *Form) SetValues(ctx context.Context, values map[string]any) error {
	var errs []error
	for name, v := range values {
		fld, ok := fm.fields[name]
		if !ok {
			continue
		}
		if err := fld.setAnyValue(ctx, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetInitialValues reassigns the dirty/pristine baselines of the named
// fields, with the same key and type handling as SetValues.
func (fm *Form) SetInitialValues(ctx context.Context, values map[string]any) error {
	var errs []error
	for name, v := range values {
		fld, ok := fm.fields[name]
		if !ok {
			continue
		}
		if err := fld.setAnyInitialValue(ctx, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Errors returns the current failure message of every field that carries
// one, keyed by name. Fields without an error are absent from the map.
func (fm *Form) Errors() map[string]string {
	errs := make(map[string]string)
	for name, fld := range fm.fields {
		if msg, ok := fld.ErrorMessage(); ok {
			errs[name] = msg
		}
	}
	return errs
}

// SetDisabled fans the disabled flag out to every field.
func (fm *Form) SetDisabled(disabled bool) {
	for _, fld := range fm.fields {
		fld.SetDisabled(disabled)
	}
}

// Disabled reports whether every field is disabled.
func (fm *Form) Disabled() bool {
	for _, fld := range fm.fields {
		if !fld.Disabled() {
			return false
		}
	}
	return true
}

// Dirty reports whether any field differs from its initial value.
func (fm *Form) Dirty() bool {
	for _, fld := range fm.fields {
		if fld.Dirty() {
			return true
		}
	}
	return false
}

// Valid reports whether every field is valid.
func (fm *Form) Valid() bool {
	for _, fld := range fm.fields {
		if !fld.Valid() {
			return false
		}
	}
	return true
}

// Close tears down every field, cancelling pending debounced validations.
func (fm *Form) Close() {
	for _, fld := range fm.fields {
		fld.Close()
	}
}

// -----------------------------------------------------------------------------
// FormField adapters on Field
// -----------------------------------------------------------------------------

func (f *Field[T]) anyValue() any {
	return f.Value()
}

func (f *Field[T]) setAnyValue(ctx context.Context, v any) error {
	tv, ok := v.(T)
	if !ok {
		return fmt.Errorf("field %q: cannot assign value of type %T", f.name, v)
	}
	f.SetValue(ctx, tv)
	return nil
}

func (f *Field[T]) setAnyInitialValue(ctx context.Context, v any) error {
	tv, ok := v.(T)
	if !ok {
		return fmt.Errorf("field %q: cannot assign initial value of type %T", f.name, v)
	}
	f.SetInitialValue(ctx, tv)
	return nil
}
