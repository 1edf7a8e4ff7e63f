package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// IsString accepts any value.
func IsString(string) bool { return true }

// WithinMaxLength reports whether value holds at most max characters (runes, not bytes).
func WithinMaxLength(value string, max int) bool {
	return utf8.RuneCountInString(value) <= max
}

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: fieldError(field, "required", "field is required", nil),
	}
}

func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: fieldError(field, "in_list",
			fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
			map[string]any{"allowed_values": allowedValues}),
	}
}

// Unique validates that value has not been seen before within seen, recording it otherwise.
func Unique(field, value string, seen map[string]struct{}) Rule {
	return Rule{
		Check: func() bool {
			if _, ok := seen[value]; ok {
				return false
			}
			seen[value] = struct{}{}
			return true
		},
		Error: fieldError(field, "unique",
			fmt.Sprintf("duplicate value %q", value),
			map[string]any{"value": value}),
	}
}
