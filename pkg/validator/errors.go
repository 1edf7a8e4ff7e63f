package validator

import "errors"

var (
	// ErrInvalidDatePattern is returned when a date pattern cannot be compiled.
	ErrInvalidDatePattern = errors.New("invalid date pattern")

	// ErrInvalidCurrencyOptions is returned when currency options are self-contradictory.
	ErrInvalidCurrencyOptions = errors.New("invalid currency options")

	// ErrUnknownCurrencyCode is returned for ISO 4217 codes missing from the currency table.
	ErrUnknownCurrencyCode = errors.New("unknown currency code")
)
