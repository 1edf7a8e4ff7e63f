package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// AnyPlaces disables the fractional digit limit of IsDecimal.
const AnyPlaces = -1

var (
	integerRegex    = regexp.MustCompile(`^[+-]?\d+$`)
	numberRegex     = regexp.MustCompile(`^-?(\d{1,3}(,\d{3})*|\d+)(\.\d+)?$`)
	percentageRegex = regexp.MustCompile(`^\d+(\.\d{1,3})?\s?%$`)
)

// IsInteger reports whether value is a base-10 integer with an optional sign.
// Grouping separators and fractional parts are rejected.
func IsInteger(value string) bool {
	return integerRegex.MatchString(strings.TrimSpace(value))
}

// IsDecimal reports whether value matches -?\d+(\.\d{1,places})?.
// A negative places value accepts any number of fractional digits, zero accepts none.
// With allowThousands every comma is stripped before the check.
func IsDecimal(value string, places int, allowThousands bool) bool {
	value = strings.TrimSpace(value)
	if allowThousands {
		value = strings.ReplaceAll(value, ",", "")
	}
	value = strings.TrimPrefix(value, "-")

	whole, frac, hasFrac := strings.Cut(value, ".")
	if !allDigits(whole) {
		return false
	}
	if !hasFrac {
		return true
	}
	if places == 0 || !allDigits(frac) {
		return false
	}
	return places < 0 || len(frac) <= places
}

// IsNumber reports whether value is an integer or decimal of any precision.
// Thousands separators are accepted only as well-formed groups of three digits.
func IsNumber(value string) bool {
	return numberRegex.MatchString(strings.TrimSpace(value))
}

// IsPercentage reports whether value is a non-negative number with at most three
// fractional digits followed by a percent sign.
func IsPercentage(value string) bool {
	return percentageRegex.MatchString(strings.TrimSpace(value))
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: fieldError(field, "min", fmt.Sprintf("must be at least %v", min), map[string]any{"min": min}),
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: fieldError(field, "max", fmt.Sprintf("must be at most %v", max), map[string]any{"max": max}),
	}
}
