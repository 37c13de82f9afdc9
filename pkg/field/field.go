package field

import "github.com/inputkit/inputkit/pkg/validators"

// Field tracks the value and validation state of a single text input. It
// holds zero or one validator; every value change re-validates and stores
// the resulting message so the UI layer can render or clear feedback.
//
// A Field models UI state and is meant to be driven from a single
// goroutine, typically the event loop that owns the widget. The validator
// it holds remains safe to share.
type Field struct {
	name      string
	value     string
	validator validators.Validator
	message   string
	touched   bool
}

// New creates a field with an optional validator. A nil validator means
// every value is acceptable.
func New(name string, validator validators.Validator) *Field {
	return &Field{name: name, validator: validator}
}

// Name returns the identifier the field was created with.
func (f *Field) Name() string { return f.name }

// Value returns the current content.
func (f *Field) Value() string { return f.value }

// SetValue stores new content and re-validates it. It reports whether the
// new content is valid, so change handlers can branch without a second
// Message call.
func (f *Field) SetValue(value string) bool {
	f.value = value
	f.touched = true
	f.message = ""
	if f.validator != nil {
		f.message = f.validator.Validate(value)
	}
	return f.message == ""
}

// Message returns the error message for the current value, or an empty
// string when the value is acceptable or the field was never edited.
func (f *Field) Message() string { return f.message }

// Valid reports whether the current value passes validation. An untouched
// field re-checks its initial value, so a mandatory field created empty
// with an allow-empty-false chain reports invalid before any edit.
func (f *Field) Valid() bool {
	if f.validator == nil {
		return true
	}
	if !f.touched {
		return f.validator.Validate(f.value) == ""
	}
	return f.message == ""
}

// Touched reports whether SetValue has been called since creation or the
// last Reset.
func (f *Field) Touched() bool { return f.touched }

// Reset clears the value, the stored message and the touched flag.
func (f *Field) Reset() {
	f.value = ""
	f.message = ""
	f.touched = false
}
