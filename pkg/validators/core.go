package validators

import "slices"

// Validator checks a single string value and reports the first problem it
// finds. An empty return value means the input is acceptable; a non-empty
// return value is the human-readable message a UI should surface next to
// the offending input. Constructors in this package guarantee that failure
// messages are never empty, so the two outcomes cannot be confused.
//
// Validators are immutable once constructed and safe for concurrent use.
type Validator interface {
	Validate(input string) string
}

// BooleanValidator turns a single predicate into a Validator. For non-empty
// input the configured message is returned exactly when the predicate
// reports false. Empty input is exempt from the predicate unless the
// validator was built with WithAllowEmpty(false).
type BooleanValidator struct {
	valid      func(string) bool
	message    string
	allowEmpty bool
}

// NewBoolean builds a validator from a predicate and a failure message.
// The message may be overridden with WithMessage. A nil predicate or an
// empty effective message is a configuration error.
func NewBoolean(valid func(string) bool, message string, opts ...Option) (*BooleanValidator, error) {
	s := newSettings(opts)
	if err := s.rejectExactCount(); err != nil {
		return nil, err
	}
	if valid == nil {
		return nil, ErrNilPredicate
	}
	if s.message != "" {
		message = s.message
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}
	return &BooleanValidator{valid: valid, message: message, allowEmpty: s.allowEmpty}, nil
}

func (v *BooleanValidator) Validate(input string) string {
	if v.allowEmpty && input == "" {
		return ""
	}
	if v.valid(input) {
		return ""
	}
	return v.message
}

// CountMessages holds the three failure messages a CountValidator can
// return. Exactly one of them is surfaced per failed validation.
type CountMessages struct {
	// Missing is returned when the counted feature is absent but required.
	Missing string
	// Present is returned when the counted feature is present but forbidden.
	Present string
	// WrongCount is returned when the feature exists and was expected to
	// exist, but its occurrence count differs from the exact expectation.
	WrongCount string
}

// CountValidator counts occurrences of some feature in the input and
// classifies the result. Without WithExactly the feature is simply required
// to occur at least once; WithExactly(0) forbids it; any other exact count
// additionally checks the total. Classification precedence is fixed:
// missing feature, then forbidden feature, then wrong count.
type CountValidator struct {
	count      func(string) int
	expected   *int
	messages   CountMessages
	allowEmpty bool
}

// NewCount builds a validator from a non-negative occurrence counter and a
// message set. WithMessage replaces all three messages with the same text,
// mirroring the single-message predicate validators. WithExactly sets the
// exact occurrence expectation; negative expectations are a configuration
// error.
func NewCount(count func(string) int, messages CountMessages, opts ...Option) (*CountValidator, error) {
	s := newSettings(opts)
	if count == nil {
		return nil, ErrNilCountFunc
	}
	if s.exactly != nil && *s.exactly < 0 {
		return nil, ErrNegativeCount
	}
	if s.message != "" {
		messages = CountMessages{Missing: s.message, Present: s.message, WrongCount: s.message}
	}
	if messages.Missing == "" || messages.Present == "" || messages.WrongCount == "" {
		return nil, ErrEmptyMessage
	}
	return &CountValidator{count: count, expected: s.exactly, messages: messages, allowEmpty: s.allowEmpty}, nil
}

func (v *CountValidator) Validate(input string) string {
	if v.allowEmpty && input == "" {
		return ""
	}
	actual := v.count(input)
	switch {
	case actual == 0 && (v.expected == nil || *v.expected != 0):
		return v.messages.Missing
	case actual != 0 && v.expected != nil && *v.expected == 0:
		return v.messages.Present
	case v.expected != nil && actual != *v.expected:
		return v.messages.WrongCount
	}
	return ""
}

// CombinedValidator applies an ordered sequence of validators to the same
// input and short-circuits on the first failure. Validators after the
// first failing one are never invoked, so callers typically order cheaper
// or more specific checks first.
type CombinedValidator struct {
	validators []Validator
}

// Combine composes validators into one. The returned validator reports the
// first non-empty message in argument order, or passes when every
// validator passes. Combining zero validators yields a validator that
// accepts everything.
func Combine(validators ...Validator) *CombinedValidator {
	return &CombinedValidator{validators: slices.Clone(validators)}
}

func (v *CombinedValidator) Validate(input string) string {
	for _, inner := range v.validators {
		if msg := inner.Validate(input); msg != "" {
			return msg
		}
	}
	return ""
}

// Must panics when a constructor returned a configuration error. It allows
// chain literals to stay compact when the configuration is known to be
// static:
//
//	v := validators.Combine(
//	    validators.Must(validators.MinLength(3)),
//	    validators.Must(validators.Email()),
//	)
func Must(v Validator, err error) Validator {
	if err != nil {
		panic(err)
	}
	return v
}
