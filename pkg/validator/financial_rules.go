package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/csvcheck/pkg/cache"
)

// CurrencyOptions describes how a monetary amount is written.
type CurrencyOptions struct {
	Symbol                string
	RequireSymbol         bool
	SymbolAfterDigits     bool
	AllowSpaceAfterSymbol bool
	ThousandsSeparator    string
	DecimalSeparator      string
	AllowDecimal          bool
	RequireDecimal        bool
	// DigitsAfterDecimal lists the accepted fraction lengths; empty accepts any length.
	DigitsAfterDecimal []int
	AllowNegatives     bool
	ParensForNegatives bool
}

// DefaultCurrencyOptions accepts amounts such as "$1,234.56", "1234.5" and "-$12".
func DefaultCurrencyOptions() CurrencyOptions {
	return CurrencyOptions{
		Symbol:             "$",
		ThousandsSeparator: ",",
		DecimalSeparator:   ".",
		AllowDecimal:       true,
		DigitsAfterDecimal: []int{1, 2},
		AllowNegatives:     true,
	}
}

type currencyInfo struct {
	symbol string
	digits int
}

// ISO 4217 currency codes - subset for common international commerce
var currencyTable = map[string]currencyInfo{
	"USD": {"$", 2}, "EUR": {"€", 2}, "GBP": {"£", 2}, "JPY": {"¥", 0},
	"AUD": {"A$", 2}, "CAD": {"C$", 2}, "CHF": {"CHF", 2}, "CNY": {"¥", 2},
	"SEK": {"kr", 2}, "NZD": {"NZ$", 2}, "MXN": {"MX$", 2}, "SGD": {"S$", 2},
	"HKD": {"HK$", 2}, "NOK": {"kr", 2}, "KRW": {"₩", 0}, "TRY": {"₺", 2},
	"RUB": {"₽", 2}, "INR": {"₹", 2}, "BRL": {"R$", 2}, "ZAR": {"R", 2},
	"PLN": {"zł", 2}, "CZK": {"Kč", 2}, "HUF": {"Ft", 2}, "ILS": {"₪", 2},
	"CLP": {"$", 0}, "PHP": {"₱", 2}, "AED": {"AED", 2}, "COP": {"$", 2},
	"SAR": {"SAR", 2}, "MYR": {"RM", 2}, "RON": {"lei", 2}, "THB": {"฿", 2},
	"BGN": {"лв", 2}, "ISK": {"kr", 0}, "DKK": {"kr", 2}, "VND": {"₫", 0},
}

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// IsCurrencyCode reports whether code is a known ISO 4217 code.
func IsCurrencyCode(code string) bool {
	upper := strings.ToUpper(strings.TrimSpace(code))
	_, ok := currencyTable[upper]
	return currencyCodeRegex.MatchString(upper) && ok
}

// CurrencyOptionsForCode derives options from an ISO 4217 code: its symbol and minor unit.
func CurrencyOptionsForCode(code string) (CurrencyOptions, error) {
	info, ok := currencyTable[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return CurrencyOptions{}, fmt.Errorf("%w: %q", ErrUnknownCurrencyCode, code)
	}

	opts := DefaultCurrencyOptions()
	opts.Symbol = info.symbol
	if info.digits == 0 {
		opts.AllowDecimal = false
		opts.DigitsAfterDecimal = nil
	} else {
		opts.DigitsAfterDecimal = []int{info.digits}
	}
	return opts, nil
}

// Validate reports contradictory options.
func (o CurrencyOptions) Validate() error {
	if o.ThousandsSeparator != "" && o.ThousandsSeparator == o.DecimalSeparator {
		return fmt.Errorf("%w: thousands and decimal separators are both %q",
			ErrInvalidCurrencyOptions, o.DecimalSeparator)
	}
	if o.AllowDecimal && o.DecimalSeparator == "" {
		return fmt.Errorf("%w: decimal separator is required when decimals are allowed", ErrInvalidCurrencyOptions)
	}
	if o.RequireDecimal && !o.AllowDecimal {
		return fmt.Errorf("%w: decimals are required but not allowed", ErrInvalidCurrencyOptions)
	}
	if o.RequireSymbol && o.Symbol == "" {
		return fmt.Errorf("%w: symbol is required but empty", ErrInvalidCurrencyOptions)
	}
	for _, d := range o.DigitsAfterDecimal {
		if d < 1 {
			return fmt.Errorf("%w: digits after decimal must be positive, got %d", ErrInvalidCurrencyOptions, d)
		}
	}
	return nil
}

var currencyAmounts = cache.NewLRU[string, *regexp.Regexp](64)

func (o CurrencyOptions) amountRegex() *regexp.Regexp {
	key := fmt.Sprintf("%q|%q|%t|%t|%v", o.ThousandsSeparator, o.DecimalSeparator,
		o.AllowDecimal, o.RequireDecimal, o.DigitsAfterDecimal)
	if re, ok := currencyAmounts.Get(key); ok {
		return re
	}

	var b strings.Builder
	b.WriteString(`^(0|[1-9]\d*`)
	if o.ThousandsSeparator != "" {
		b.WriteString(`|[1-9]\d{0,2}(` + regexp.QuoteMeta(o.ThousandsSeparator) + `\d{3})*`)
	}
	b.WriteString(`)`)

	if o.AllowDecimal {
		fraction := `\d+`
		if len(o.DigitsAfterDecimal) > 0 {
			alts := make([]string, 0, len(o.DigitsAfterDecimal))
			for _, d := range o.DigitsAfterDecimal {
				alts = append(alts, `\d{`+strconv.Itoa(d)+`}`)
			}
			fraction = strings.Join(alts, "|")
		}
		b.WriteString(`(` + regexp.QuoteMeta(o.DecimalSeparator) + `(` + fraction + `))`)
		if !o.RequireDecimal {
			b.WriteString(`?`)
		}
	}
	b.WriteString(`$`)

	re := regexp.MustCompile(b.String())
	currencyAmounts.Put(key, re)
	return re
}

// IsCurrency reports whether value is a monetary amount written per opts.
func IsCurrency(value string, opts CurrencyOptions) bool {
	value = strings.TrimSpace(value)
	if value == "" || opts.Validate() != nil {
		return false
	}

	negative := false
	switch {
	case strings.HasPrefix(value, "-"):
		negative = true
		value = value[1:]
	case opts.ParensForNegatives && strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")"):
		negative = true
		value = value[1 : len(value)-1]
	}

	if opts.Symbol != "" {
		var found bool
		if opts.SymbolAfterDigits {
			value, found = strings.CutSuffix(value, opts.Symbol)
			if found && opts.AllowSpaceAfterSymbol {
				value = strings.TrimSuffix(value, " ")
			}
		} else {
			value, found = strings.CutPrefix(value, opts.Symbol)
			if found && opts.AllowSpaceAfterSymbol {
				value = strings.TrimPrefix(value, " ")
			}
		}
		if !found && opts.RequireSymbol {
			return false
		}
	}

	// "$-5" style: sign after a prefix symbol.
	if !negative && strings.HasPrefix(value, "-") {
		negative = true
		value = value[1:]
	}

	if negative && !opts.AllowNegatives {
		return false
	}

	return opts.amountRegex().MatchString(value)
}

// ValidCurrencyCode validates that a string is a valid ISO 4217 currency code.
func ValidCurrencyCode(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsCurrencyCode(value) },
		Error: fieldError(field, "currency_code", "must be a valid ISO 4217 currency code", nil),
	}
}

// ValidCurrencyOptions validates that opts are internally consistent.
func ValidCurrencyOptions(field string, opts CurrencyOptions) Rule {
	err := opts.Validate()
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Rule{
		Check: func() bool { return err == nil },
		Error: fieldError(field, "currency_options", msg, nil),
	}
}
