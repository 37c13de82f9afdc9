package validators

// Option adjusts how a validator constructor behaves. Options never
// override each other silently; the last occurrence of the same option
// wins, matching the usual functional-options convention.
type Option func(*settings)

type settings struct {
	message    string
	allowEmpty bool
	exactly    *int
}

func newSettings(opts []Option) settings {
	s := settings{allowEmpty: true}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// rejectExactCount is called by predicate-based constructors, which have no
// notion of an occurrence count.
func (s settings) rejectExactCount() error {
	if s.exactly != nil {
		return ErrExactCountUnsupported
	}
	return nil
}

// WithMessage replaces the default failure message. Count validators use
// the same text for all three of their failure modes, so a custom message
// hides which mode actually fired.
func WithMessage(message string) Option {
	return func(s *settings) {
		s.message = message
	}
}

// WithAllowEmpty controls whether an empty input is exempt from checking.
// The default is true: an empty input always passes, regardless of the
// underlying predicate or counter. Pair a validator with MinLength(1) or
// WithAllowEmpty(false) when a value is mandatory.
func WithAllowEmpty(allow bool) Option {
	return func(s *settings) {
		s.allowEmpty = allow
	}
}

// WithExactly requires the counted feature to occur exactly n times.
// WithExactly(0) forbids the feature entirely. Only count-based
// constructors accept this option; predicate-based ones report a
// configuration error.
func WithExactly(n int) Option {
	return func(s *settings) {
		s.exactly = &n
	}
}
