package profile

import "errors"

var (
	// ErrMalformedDocument is returned when the YAML cannot be decoded into
	// a profile document.
	ErrMalformedDocument = errors.New("malformed profile document")

	// ErrNoProfiles is returned when the document defines no profiles.
	ErrNoProfiles = errors.New("no profiles defined")

	// ErrEmptyProfile is returned when a profile has no rules.
	ErrEmptyProfile = errors.New("profile has no rules")

	// ErrUnknownRule is returned when a rule name has no constructor.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrMissingParameter is returned when a rule omits a required parameter.
	ErrMissingParameter = errors.New("missing required parameter")
)
