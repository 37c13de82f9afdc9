package validators

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Length checks count characters (runes), not bytes, since the inputs being
// validated come from text widgets where the user thinks in characters.

// MinLength validates that the input is at least length characters long.
func MinLength(length int, opts ...Option) (Validator, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}
	message := fmt.Sprintf("Input is too short (length should be at least %d)", length)
	return NewBoolean(func(input string) bool {
		return utf8.RuneCountInString(input) >= length
	}, message, opts...)
}

// MaxLength validates that the input is at most length characters long.
func MaxLength(length int, opts ...Option) (Validator, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}
	message := fmt.Sprintf("Input is too long (length should be at most %d)", length)
	return NewBoolean(func(input string) bool {
		return utf8.RuneCountInString(input) <= length
	}, message, opts...)
}

// LengthBetween validates that the input length falls within [min, max].
// It is a combination of MinLength and MaxLength, and a custom WithMessage
// is applied to both bounds identically: the same text is reported whether
// the input was too short or too long. Omit the custom message to keep the
// bound-specific defaults.
func LengthBetween(min, max int, opts ...Option) (Validator, error) {
	if min < 0 || max < 0 {
		return nil, ErrNegativeLength
	}
	if max < min {
		return nil, ErrInvertedBounds
	}
	lower, err := MinLength(min, opts...)
	if err != nil {
		return nil, err
	}
	upper, err := MaxLength(max, opts...)
	if err != nil {
		return nil, err
	}
	return Combine(lower, upper), nil
}

// StartsWith validates that the input starts with any of the given literal
// prefixes.
func StartsWith(prefixes []string, opts ...Option) (Validator, error) {
	if err := checkSubstrings(prefixes); err != nil {
		return nil, err
	}
	prefixes = slices.Clone(prefixes)
	message := "Input should start with " + quoteAll(prefixes)
	return NewBoolean(func(input string) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(input, prefix) {
				return true
			}
		}
		return false
	}, message, opts...)
}

// EndsWith validates that the input ends with any of the given literal
// suffixes.
func EndsWith(suffixes []string, opts ...Option) (Validator, error) {
	if err := checkSubstrings(suffixes); err != nil {
		return nil, err
	}
	suffixes = slices.Clone(suffixes)
	message := "Input should end with " + quoteAll(suffixes)
	return NewBoolean(func(input string) bool {
		for _, suffix := range suffixes {
			if strings.HasSuffix(input, suffix) {
				return true
			}
		}
		return false
	}, message, opts...)
}

func checkSubstrings(substrings []string) error {
	if len(substrings) == 0 {
		return ErrNoSubstrings
	}
	for _, s := range substrings {
		if s == "" {
			return ErrEmptySubstring
		}
	}
	return nil
}

// quoteAll renders a substring list for default messages: `"a"` for a
// single entry, `"a", "b" or "c"` for several.
func quoteAll(substrings []string) string {
	quoted := make([]string, len(substrings))
	for i, s := range substrings {
		quoted[i] = strconv.Quote(s)
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
