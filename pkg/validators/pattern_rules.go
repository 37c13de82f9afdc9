package validators

import (
	"fmt"
	"regexp"
)

// Canonical patterns for the semantic validators. Process-wide immutable
// constants, compiled once at startup.
const (
	// IntegerPattern matches a full-string unsigned decimal integer with no
	// sign and no separators.
	IntegerPattern = `^[0-9]+$`

	// NumberPattern matches a full-string decimal number with an optional
	// leading minus and an optional fractional part: "12", "12.3", ".5" and
	// "5." are all accepted.
	NumberPattern = `^-?(\d+|\d*\.\d+|\d+\.\d*)$`

	// EmailPattern is a deliberately simplified address grammar: the local
	// part starts with a letter, may contain letters, digits and dots, and
	// ends with a letter or digit; the domain starts with a letter and is
	// followed by one or more dot-separated alphanumeric labels. It is
	// permissive and approximate by design, not RFC 5322 complete.
	EmailPattern = `^[a-zA-Z][a-zA-Z0-9.]*[a-zA-Z0-9]@[a-zA-Z][a-zA-Z0-9]*(\.[a-zA-Z0-9]+)+$`
)

var (
	integerRegex = regexp.MustCompile(IntegerPattern)
	numberRegex  = regexp.MustCompile(NumberPattern)
	emailRegex   = regexp.MustCompile(EmailPattern)
)

// MatchRegex validates that the pattern matches anywhere in the input
// (search semantics; anchor the pattern for a full-string match). An
// invalid pattern is a configuration error reported at construction, not
// deferred to the first validation.
func MatchRegex(pattern string, opts ...Option) (Validator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return matchCompiled(re, "Input should match regex: "+pattern, opts)
}

// Integer validates that the input is an unsigned decimal integer.
func Integer(opts ...Option) (Validator, error) {
	return matchCompiled(integerRegex, "Input should be an integer", opts)
}

// Number validates that the input is a decimal number, with an optional
// leading minus and an optional fractional part.
func Number(opts ...Option) (Validator, error) {
	return matchCompiled(numberRegex, "Input should be a number", opts)
}

// Email validates that the input looks like an email address. The check is
// intentionally approximate (see EmailPattern); it catches obvious typos
// in a form, it does not prove deliverability.
func Email(opts ...Option) (Validator, error) {
	return matchCompiled(emailRegex, "Input should be a valid email address", opts)
}

func matchCompiled(re *regexp.Regexp, message string, opts []Option) (Validator, error) {
	return NewBoolean(re.MatchString, message, opts...)
}
