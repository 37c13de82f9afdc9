// Package validators provides a composable, declarative framework for
// validating the content of text inputs in form-style user interfaces.
//
// A Validator maps an input string to either an empty string (the input is
// acceptable) or a human-readable error message for the UI to display.
// Validation failures are ordinary return values, never errors; errors are
// reserved for configuration mistakes caught while a validator is being
// constructed, close to the code that builds the form.
//
// # Architecture
//
// Three concrete variants cover every rule in the package:
//   - BooleanValidator  – wraps a single predicate and one message
//   - CountValidator    – counts a feature and classifies the count against
//     an existence, non-existence or exact-count expectation
//   - CombinedValidator – applies an ordered sequence, short-circuiting on
//     the first failure
//
// Rule constructors (`string_rules.go`, `pattern_rules.go`,
// `count_rules.go`) only assemble these variants; there is no hidden global
// state, so every validator is immutable, allocation-light and safe to
// invoke concurrently.
//
// # Empty-Input Policy
//
// Every validator exempts the empty string by default, so a chain reports
// nothing while a field is still untouched. Pass WithAllowEmpty(false), or
// include MinLength(1), to make a value mandatory.
//
// # Usage
//
//	chain := validators.Combine(
//	    validators.Must(validators.LengthBetween(3, 32)),
//	    validators.Must(validators.ContainsDigit()),
//	)
//	if msg := chain.Validate(input.Value()); msg != "" {
//	    // surface msg next to the input
//	}
//
// Constructors return an error for invalid configuration (negative bounds,
// malformed regex patterns, empty substring lists); Must panics on such
// errors for static chains.
//
// # Known Limitations
//
// Email validates against a simplified grammar, not RFC 5322. A custom
// WithMessage given to LengthBetween is reported for both bounds, hiding
// which one failed. Both behaviors are deliberate and documented on the
// respective constructors.
package validators
