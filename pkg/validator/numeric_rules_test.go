package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/csvcheck/pkg/validator"
)

func TestIsInteger(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"123", true},
		{" 123 ", true},
		{"-123", true},
		{"+7", true},
		{"0", true},
		{"123.0", false},
		{"1,234", false},
		{"12a", false},
		{"", false},
		{"-", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsInteger(tt.value))
		})
	}
}

func TestIsDecimal(t *testing.T) {
	t.Run("respects decimal places", func(t *testing.T) {
		assert.True(t, validator.IsDecimal("12.34", 2, false))
		assert.True(t, validator.IsDecimal("12", 2, false))
		assert.True(t, validator.IsDecimal("123.4", 2, false))
		assert.True(t, validator.IsDecimal("-0.5", 2, false))
		assert.False(t, validator.IsDecimal("12.345", 2, false))
	})

	t.Run("unconstrained places", func(t *testing.T) {
		assert.True(t, validator.IsDecimal("3.14159265", validator.AnyPlaces, false))
		assert.True(t, validator.IsDecimal("42", validator.AnyPlaces, false))
	})

	t.Run("zero places rejects fractions", func(t *testing.T) {
		assert.True(t, validator.IsDecimal("42", 0, false))
		assert.False(t, validator.IsDecimal("42.0", 0, false))
	})

	t.Run("malformed values", func(t *testing.T) {
		for _, v := range []string{"", "abc", ".5", "5.", "1.2.3", "--1", "+1.0"} {
			assert.False(t, validator.IsDecimal(v, validator.AnyPlaces, false), v)
		}
	})

	t.Run("thousands separators", func(t *testing.T) {
		assert.False(t, validator.IsDecimal("1,234.50", 2, false))
		assert.True(t, validator.IsDecimal("1,234.50", 2, true))
		assert.True(t, validator.IsDecimal("-1,000,000", validator.AnyPlaces, true))
	})
}

func TestIsNumber(t *testing.T) {
	valid := []string{"123", "-123", "1,234", "1,234.56", "1234.5678", "0.5", " 42 "}
	invalid := []string{"", "abc", "1,23,456", "1234,567", "12,34,567.89", "1.", "+5", "1e5"}

	for _, v := range valid {
		assert.True(t, validator.IsNumber(v), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.IsNumber(v), v)
	}
}

func TestIsPercentage(t *testing.T) {
	valid := []string{"50%", "50 %", "12.5%", "99.999%", "0%"}
	invalid := []string{"50", "%", "-5%", "12.3456%", "abc%"}

	for _, v := range valid {
		assert.True(t, validator.IsPercentage(v), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.IsPercentage(v), v)
	}
}

func TestNumericRules(t *testing.T) {
	t.Run("MaxNum reports the bound in translation values", func(t *testing.T) {
		rule := validator.MaxNum("concurrency", 65, 64)
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.max", rule.Error.TranslationKey)
		assert.Equal(t, 64, rule.Error.TranslationValues["max"])
		assert.Equal(t, "concurrency", rule.Error.TranslationValues["field"])
	})

	t.Run("bounds", func(t *testing.T) {
		assert.True(t, validator.MinNum("n", 5, 5).Check())
		assert.False(t, validator.MinNum("n", 4, 5).Check())
		assert.True(t, validator.MaxNum("n", 5, 5).Check())
		assert.False(t, validator.MaxNum("n", 6, 5).Check())
	})
}
