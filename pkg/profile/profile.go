package profile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inputkit/inputkit/pkg/validators"
)

// Document is the root of a profile file: named validation chains, each an
// ordered list of rules applied in document order.
type Document struct {
	Profiles map[string][]RuleSpec `yaml:"profiles"`
}

// RuleSpec describes one rule inside a chain. Rule selects the constructor;
// the remaining fields are its parameters. Unused parameters for the
// selected rule are rejected by the underlying constructor where they
// would be ambiguous (for example a count on a length rule).
type RuleSpec struct {
	Rule       string   `yaml:"rule"`
	Length     *int     `yaml:"length"`
	Min        *int     `yaml:"min"`
	Max        *int     `yaml:"max"`
	Substrings []string `yaml:"substrings"`
	Pattern    string   `yaml:"pattern"`
	Count      *int     `yaml:"count"`
	Message    string   `yaml:"message"`
	AllowEmpty *bool    `yaml:"allow_empty"`
}

// Load reads and parses a profile file from disk.
func Load(path string) (map[string]validators.Validator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a YAML profile document and builds one combined validator
// per profile. Any malformed rule aborts the whole load so configuration
// mistakes surface at startup rather than mid-session.
func Parse(r io.Reader) (map[string]validators.Validator, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if len(doc.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	chains := make(map[string]validators.Validator, len(doc.Profiles))
	for name, specs := range doc.Profiles {
		if len(specs) == 0 {
			return nil, fmt.Errorf("profile %q: %w", name, ErrEmptyProfile)
		}
		chain := make([]validators.Validator, 0, len(specs))
		for i, spec := range specs {
			v, err := build(spec)
			if err != nil {
				return nil, fmt.Errorf("profile %q, rule %d (%s): %w", name, i+1, spec.Rule, err)
			}
			chain = append(chain, v)
		}
		chains[name] = validators.Combine(chain...)
	}
	return chains, nil
}

func build(spec RuleSpec) (validators.Validator, error) {
	opts := options(spec)

	switch spec.Rule {
	case "min_length":
		if spec.Length == nil {
			return nil, fmt.Errorf("%w: length", ErrMissingParameter)
		}
		return validators.MinLength(*spec.Length, opts...)
	case "max_length":
		if spec.Length == nil {
			return nil, fmt.Errorf("%w: length", ErrMissingParameter)
		}
		return validators.MaxLength(*spec.Length, opts...)
	case "length_between":
		if spec.Min == nil || spec.Max == nil {
			return nil, fmt.Errorf("%w: min and max", ErrMissingParameter)
		}
		return validators.LengthBetween(*spec.Min, *spec.Max, opts...)
	case "startswith":
		return validators.StartsWith(spec.Substrings, opts...)
	case "endswith":
		return validators.EndsWith(spec.Substrings, opts...)
	case "match_regex":
		if spec.Pattern == "" {
			return nil, fmt.Errorf("%w: pattern", ErrMissingParameter)
		}
		return validators.MatchRegex(spec.Pattern, opts...)
	case "integer":
		return validators.Integer(opts...)
	case "number":
		return validators.Number(opts...)
	case "email":
		return validators.Email(opts...)
	case "contains":
		return validators.Contains(spec.Substrings, opts...)
	case "not_contains":
		return validators.NotContains(spec.Substrings, opts...)
	case "contains_uppercase":
		return validators.ContainsUppercase(opts...)
	case "contains_lowercase":
		return validators.ContainsLowercase(opts...)
	case "contains_digit":
		return validators.ContainsDigit(opts...)
	case "contains_special":
		return validators.ContainsSpecial(opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRule, spec.Rule)
}

func options(spec RuleSpec) []validators.Option {
	var opts []validators.Option
	if spec.Message != "" {
		opts = append(opts, validators.WithMessage(spec.Message))
	}
	if spec.AllowEmpty != nil {
		opts = append(opts, validators.WithAllowEmpty(*spec.AllowEmpty))
	}
	if spec.Count != nil {
		opts = append(opts, validators.WithExactly(*spec.Count))
	}
	return opts
}
