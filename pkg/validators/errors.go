package validators

import "errors"

// Configuration errors reported by validator constructors. These surface at
// chain-building time, typically while a form is being assembled, and are
// distinct from validation failures, which are ordinary return values.
var (
	// ErrNegativeLength is returned when a length bound is negative.
	ErrNegativeLength = errors.New("length bound must not be negative")

	// ErrInvertedBounds is returned when a minimum length exceeds the maximum.
	ErrInvertedBounds = errors.New("minimum length exceeds maximum length")

	// ErrNoSubstrings is returned when a substring-based validator is built
	// without any substrings.
	ErrNoSubstrings = errors.New("at least one substring is required")

	// ErrEmptySubstring is returned when a substring-based validator is given
	// an empty substring, which would match everywhere.
	ErrEmptySubstring = errors.New("substrings must not be empty")

	// ErrInvalidPattern is returned when a regex pattern does not compile.
	ErrInvalidPattern = errors.New("invalid regex pattern")

	// ErrNegativeCount is returned when an exact occurrence count is negative.
	ErrNegativeCount = errors.New("expected count must not be negative")

	// ErrExactCountUnsupported is returned when WithExactly is passed to a
	// validator that does not count occurrences.
	ErrExactCountUnsupported = errors.New("exact count is not supported by this validator")

	// ErrNilPredicate is returned when a boolean validator is built without
	// a predicate.
	ErrNilPredicate = errors.New("predicate must not be nil")

	// ErrNilCountFunc is returned when a count validator is built without a
	// count function.
	ErrNilCountFunc = errors.New("count function must not be nil")

	// ErrEmptyMessage is returned when the effective failure message is empty,
	// which would make a failure indistinguishable from success.
	ErrEmptyMessage = errors.New("error message must not be empty")
)
