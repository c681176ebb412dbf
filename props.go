package formz

import "context"

// InputProps bundles a field's current value with its interaction
// handlers for widgets that speak the field's native type.
type InputProps[T any] struct {
	Value    T
	OnChange func(ctx context.Context, value T)
	OnBlur   func(ctx context.Context)
	OnFocus  func(ctx context.Context)
}

// InputProps returns the generic prop bundle for the field.
func (f *Field[T]) InputProps() InputProps[T] {
	return InputProps[T]{
		Value:    f.Value(),
		OnChange: f.OnChange,
		OnBlur:   f.OnBlur,
		OnFocus:  f.OnFocus,
	}
}

// StatusInputProps extends InputProps with a presentational status flag
// for widget kits that decorate inputs by validation state.
type StatusInputProps[T any] struct {
	InputProps[T]

	// Status is "error" when the field is touched and invalid, and
	// empty otherwise.
	Status string
}

// StatusInputProps returns the decorated prop bundle for the field.
func (f *Field[T]) StatusInputProps() StatusInputProps[T] {
	props := StatusInputProps[T]{
		InputProps: f.InputProps(),
	}

	f.mu.Lock()
	if f.touched && f.hasErr {
		props.Status = "error"
	}
	f.mu.Unlock()

	return props
}

// TextInputProps bundles a string field's state with the attributes a
// plain HTML-style text input expects.
type TextInputProps struct {
	Name     string
	Value    string
	Disabled bool
	OnChange func(ctx context.Context, value string)
	OnBlur   func(ctx context.Context)
	OnFocus  func(ctx context.Context)
}

// TextProps returns the HTML-style prop bundle for a string field.
func TextProps(f *Field[string]) TextInputProps {
	f.mu.Lock()
	value := f.value
	disabled := f.disabled
	f.mu.Unlock()

	return TextInputProps{
		Name:     f.name,
		Value:    value,
		Disabled: disabled,
		OnChange: f.OnChange,
		OnBlur:   f.OnBlur,
		OnFocus:  f.OnFocus,
	}
}

// RenderError returns the displayable error message for the field, or
// false when no error should be shown. Errors are suppressed while the
// user is actively editing: a message is returned only when the field is
// touched, carries an error, and is not focused. A non-empty label is
// prefixed to the message.
func (f *Field[T]) RenderError(label string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.touched || !f.hasErr || f.focused {
		return "", false
	}
	if label != "" {
		return label + ": " + f.errMsg, true
	}
	return f.errMsg, true
}
