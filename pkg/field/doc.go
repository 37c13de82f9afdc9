// Package field models the validation state of text inputs for UI
// consumers of the validators package.
//
// A Field pairs a current value with an optional validator: SetValue
// re-validates on every change and stores the first error message, which
// the UI renders next to the input or clears when validation passes. A
// Form groups fields in layout order and answers whether the whole set is
// submittable.
//
// Both types are plain UI state, driven from the single goroutine that
// owns the widgets; the validators they hold stay safe to share across
// forms.
package field
