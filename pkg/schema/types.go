package schema

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/csvcheck/pkg/validator"
)

// DataType is the closed set of cell types a column may declare.
type DataType string

const (
	Integer     DataType = "integer"
	Decimal     DataType = "decimal"
	Boolean     DataType = "boolean"
	Date        DataType = "date"
	DateTime    DataType = "datetime"
	Percentage  DataType = "percentage"
	Email       DataType = "email"
	URL         DataType = "url"
	PhoneNumber DataType = "phoneNumber"
	Currency    DataType = "currency"
	Number      DataType = "number"
	String      DataType = "string"
)

var dataTypes = []DataType{
	Integer, Decimal, Boolean, Date, DateTime, Percentage,
	Email, URL, PhoneNumber, Currency, Number, String,
}

// DataTypes returns every supported data type.
func DataTypes() []DataType {
	out := make([]DataType, len(dataTypes))
	copy(out, dataTypes)
	return out
}

// ParseDataType matches s against the supported types, ignoring case.
func ParseDataType(s string) (DataType, error) {
	for _, dt := range dataTypes {
		if strings.EqualFold(string(dt), strings.TrimSpace(s)) {
			return dt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDataType, s)
}

func (d DataType) String() string { return string(d) }

// Valid reports whether d is one of the supported types.
func (d DataType) Valid() bool {
	for _, dt := range dataTypes {
		if dt == d {
			return true
		}
	}
	return false
}

func dataTypeNames() []string {
	names := make([]string, len(dataTypes))
	for i, dt := range dataTypes {
		names[i] = string(dt)
	}
	return names
}

// Format carries the type-specific format of a column: date or datetime patterns
// tried in order, phone templates, or currency options.
type Format struct {
	Patterns []string
	Currency *validator.CurrencyOptions
}

// Pattern builds a format from one or more patterns.
func Pattern(patterns ...string) Format {
	return Format{Patterns: patterns}
}

// CurrencyFormat builds a currency format.
func CurrencyFormat(opts validator.CurrencyOptions) Format {
	return Format{Currency: &opts}
}

// IsZero reports whether no format was declared.
func (f Format) IsZero() bool {
	return len(f.Patterns) == 0 && f.Currency == nil
}

// String renders the format for messages, joining patterns with ", ".
func (f Format) String() string {
	if len(f.Patterns) > 0 {
		return strings.Join(f.Patterns, ", ")
	}
	if f.Currency != nil {
		return f.Currency.Symbol
	}
	return ""
}

// Result is the outcome of a custom validator.
type Result struct {
	ok      bool
	message string
}

// Valid is the passing result.
func Valid() Result { return Result{ok: true} }

// Invalid is a failing result. An empty message defers to the column or catalog message.
func Invalid(message string) Result { return Result{message: message} }

func (r Result) OK() bool        { return r.ok }
func (r Result) Message() string { return r.message }

// CustomValidator fully replaces built-in type checking for a column.
// A returned error means the validator itself is broken and aborts validation.
type CustomValidator func(value string) (Result, error)

// BoolValidator adapts a plain predicate into a CustomValidator.
func BoolValidator(fn func(value string) bool) CustomValidator {
	return func(value string) (Result, error) {
		if fn(value) {
			return Valid(), nil
		}
		return Invalid(""), nil
	}
}

// RequiredValidator decides whether a blank value still satisfies a required column.
// It returns true when the value should be treated as present.
type RequiredValidator func(value, column string) bool

// ColumnErrors override the catalog messages of a single column.
type ColumnErrors struct {
	Required string
	Invalid  string
}
