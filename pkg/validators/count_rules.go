package validators

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Contains validates occurrences of any of the given literal substrings.
// Without WithExactly the input must contain at least one occurrence;
// WithExactly(n) requires the total across all substrings to be exactly n.
// Occurrences are counted per substring without overlap (strings.Count
// semantics) and summed across substrings without deduplication.
func Contains(substrings []string, opts ...Option) (Validator, error) {
	if err := checkSubstrings(substrings); err != nil {
		return nil, err
	}
	substrings = slices.Clone(substrings)

	s := newSettings(opts)
	expected := 0
	if s.exactly != nil {
		expected = *s.exactly
	}
	quoted := quoteAll(substrings)
	messages := CountMessages{
		Missing:    "Input should contain " + quoted,
		Present:    "Input should not contain " + quoted,
		WrongCount: fmt.Sprintf("Input should contain %s exactly %d times", quoted, expected),
	}

	return NewCount(func(input string) int {
		total := 0
		for _, substring := range substrings {
			total += strings.Count(input, substring)
		}
		return total
	}, messages, opts...)
}

// NotContains validates that the input contains none of the given literal
// substrings. It is Contains with an exact count of zero.
func NotContains(substrings []string, opts ...Option) (Validator, error) {
	return Contains(substrings, append(slices.Clone(opts), WithExactly(0))...)
}

// ContainsUppercase validates occurrences of ASCII uppercase letters.
// Without WithExactly at least one is required.
func ContainsUppercase(opts ...Option) (Validator, error) {
	return containsClass(opts, func(r rune) bool { return r >= 'A' && r <= 'Z' },
		"Input should contain at least one uppercase character",
		"Input should not contain uppercase characters",
		"Input should contain exactly %d uppercase characters")
}

// ContainsLowercase validates occurrences of ASCII lowercase letters.
// Without WithExactly at least one is required.
func ContainsLowercase(opts ...Option) (Validator, error) {
	return containsClass(opts, func(r rune) bool { return r >= 'a' && r <= 'z' },
		"Input should contain at least one lowercase character",
		"Input should not contain lowercase characters",
		"Input should contain exactly %d lowercase characters")
}

// ContainsDigit validates occurrences of ASCII digits. Without WithExactly
// at least one is required.
func ContainsDigit(opts ...Option) (Validator, error) {
	return containsClass(opts, func(r rune) bool { return r >= '0' && r <= '9' },
		"Input should contain at least one digit",
		"Input should not contain digits",
		"Input should contain exactly %d digits")
}

// ContainsSpecial validates occurrences of special characters: anything
// that is neither a letter nor a digit, including whitespace. Without
// WithExactly at least one is required.
func ContainsSpecial(opts ...Option) (Validator, error) {
	return containsClass(opts, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	},
		"Input should contain at least one special character",
		"Input should not contain special characters",
		"Input should contain exactly %d special characters")
}

func containsClass(opts []Option, match func(rune) bool, missing, present, wrongCountFormat string) (Validator, error) {
	s := newSettings(opts)
	expected := 0
	if s.exactly != nil {
		expected = *s.exactly
	}
	messages := CountMessages{
		Missing:    missing,
		Present:    present,
		WrongCount: fmt.Sprintf(wrongCountFormat, expected),
	}
	return NewCount(func(input string) int {
		count := 0
		for _, r := range input {
			if match(r) {
				count++
			}
		}
		return count
	}, messages, opts...)
}
