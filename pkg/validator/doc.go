// Package validator provides the value checkers used to validate CSV cells and a
// small rule-building layer used to validate configuration.
//
// The package has two faces. The Is* functions are pure predicates over raw
// cell text: IsInteger, IsDecimal, IsBoolean, IsDate, IsDateTime, IsPercentage,
// IsEmail, IsURL, IsPhoneNumber, IsCurrency, IsNumber and IsString. Each of
// them trims surrounding whitespace before testing (IsString accepts anything).
// The Rule constructors (RequiredString, Unique, InListString, MinNum, MaxNum,
// ValidDatePattern, ValidPhoneTemplate, ValidCurrencyCode, ValidCurrencyOptions)
// check schema and runtime settings; they carry translation-friendly error
// metadata and are evaluated with Apply.
//
// # Architecture
//
// Each source file groups a family of checks (`numeric_rules.go`,
// `date_rules.go`, `financial_rules.go`, etc.). There is no mutable global state
// apart from the compiled-pattern caches, which are safe for concurrent use, so
// every function in the package is goroutine-safe.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//   - DatePattern       – compiled moment-style date pattern (YYYY, MM, DD, HH, ...)
//   - CurrencyOptions   – describes symbol, separators and sign handling for amounts
//
// # Usage
//
//	if !validator.IsDate("31/12/2020", "DD/MM/YYYY") {
//	    // reject the cell
//	}
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.MinNum("decimalPlaces", places, 0),
//	    validator.ValidDatePattern("format", pattern),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages or translate them
//	}
//
// # Date patterns
//
// Date and datetime checks are strict: the whole value must match the pattern
// and the parsed components must form a real calendar date, so "31/02/2020"
// is rejected by "DD/MM/YYYY" and "31/12/2020" is rejected by "MM/DD/YYYY".
// Text inside square brackets is literal, e.g. "YYYY-MM-DD[T]HH:mm:ss".
package validator
