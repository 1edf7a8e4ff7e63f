package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csvcheck/pkg/validator"
)

func TestIsCurrency(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		opts := validator.DefaultCurrencyOptions()
		for _, v := range []string{"$1,234.56", "1234.56", "$0.5", "-$12", "$-12.00", "1,000", "12"} {
			assert.True(t, validator.IsCurrency(v, opts), v)
		}
		for _, v := range []string{"", "$", "1,23", "12.345", "$01", "abc", "€12", "1.2.3"} {
			assert.False(t, validator.IsCurrency(v, opts), v)
		}
	})

	t.Run("required symbol", func(t *testing.T) {
		opts := validator.DefaultCurrencyOptions()
		opts.RequireSymbol = true
		assert.True(t, validator.IsCurrency("$10", opts))
		assert.False(t, validator.IsCurrency("10", opts))
	})

	t.Run("symbol after digits with space", func(t *testing.T) {
		opts := validator.CurrencyOptions{
			Symbol:                "€",
			SymbolAfterDigits:     true,
			AllowSpaceAfterSymbol: true,
			ThousandsSeparator:    ".",
			DecimalSeparator:      ",",
			AllowDecimal:          true,
			DigitsAfterDecimal:    []int{2},
		}
		assert.True(t, validator.IsCurrency("1.234,56 €", opts))
		assert.True(t, validator.IsCurrency("1.234,56€", opts))
		assert.False(t, validator.IsCurrency("1,234.56 €", opts))
		assert.False(t, validator.IsCurrency("-5,00 €", opts))
	})

	t.Run("parentheses for negatives", func(t *testing.T) {
		opts := validator.DefaultCurrencyOptions()
		opts.ParensForNegatives = true
		assert.True(t, validator.IsCurrency("($12.50)", opts))

		opts.AllowNegatives = false
		assert.False(t, validator.IsCurrency("($12.50)", opts))
		assert.False(t, validator.IsCurrency("-$12.50", opts))
	})

	t.Run("required decimal", func(t *testing.T) {
		opts := validator.DefaultCurrencyOptions()
		opts.RequireDecimal = true
		opts.DigitsAfterDecimal = []int{2}
		assert.True(t, validator.IsCurrency("$5.00", opts))
		assert.False(t, validator.IsCurrency("$5", opts))
		assert.False(t, validator.IsCurrency("$5.0", opts))
	})

	t.Run("invalid options never match", func(t *testing.T) {
		opts := validator.DefaultCurrencyOptions()
		opts.DecimalSeparator = ","
		assert.False(t, validator.IsCurrency("5", opts))
	})
}

func TestCurrencyOptionsForCode(t *testing.T) {
	t.Run("known code with minor units", func(t *testing.T) {
		opts, err := validator.CurrencyOptionsForCode("eur")
		require.NoError(t, err)
		assert.Equal(t, "€", opts.Symbol)
		assert.True(t, validator.IsCurrency("€10.50", opts))
		assert.False(t, validator.IsCurrency("€10.5", opts))
	})

	t.Run("zero minor units", func(t *testing.T) {
		opts, err := validator.CurrencyOptionsForCode("JPY")
		require.NoError(t, err)
		assert.True(t, validator.IsCurrency("¥1,000", opts))
		assert.False(t, validator.IsCurrency("¥1,000.50", opts))
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := validator.CurrencyOptionsForCode("XXX")
		assert.ErrorIs(t, err, validator.ErrUnknownCurrencyCode)
	})
}

func TestCurrencyRules(t *testing.T) {
	assert.True(t, validator.IsCurrencyCode("usd"))
	assert.False(t, validator.IsCurrencyCode("US"))
	assert.True(t, validator.ValidCurrencyCode("code", "GBP").Check())
	assert.False(t, validator.ValidCurrencyCode("code", "ABC").Check())

	bad := validator.DefaultCurrencyOptions()
	bad.ThousandsSeparator = "."
	rule := validator.ValidCurrencyOptions("format", bad)
	assert.False(t, rule.Check())
	assert.Contains(t, rule.Error.Message, "separators")
}
