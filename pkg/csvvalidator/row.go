package csvvalidator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/csvcheck/pkg/csvsource"
	"github.com/dmitrymomot/csvcheck/pkg/schema"
	"github.com/dmitrymomot/csvcheck/pkg/validator"
)

// builtinCheckers dispatches a data type to its validator predicate.
var builtinCheckers = map[schema.DataType]func(col schema.Column, value string) bool{
	schema.Integer: func(_ schema.Column, v string) bool { return validator.IsInteger(v) },
	schema.Decimal: func(c schema.Column, v string) bool {
		return validator.IsDecimal(v, c.Places(), c.AllowThousandsSeparator)
	},
	schema.Boolean:     func(_ schema.Column, v string) bool { return validator.IsBoolean(v) },
	schema.Date:        func(c schema.Column, v string) bool { return validator.IsDate(v, c.Format.Patterns...) },
	schema.DateTime:    func(c schema.Column, v string) bool { return validator.IsDateTime(v, c.Format.Patterns...) },
	schema.Percentage:  func(_ schema.Column, v string) bool { return validator.IsPercentage(v) },
	schema.Email:       func(_ schema.Column, v string) bool { return validator.IsEmail(v) },
	schema.URL:         func(_ schema.Column, v string) bool { return validator.IsURL(v) },
	schema.PhoneNumber: func(c schema.Column, v string) bool { return validator.IsPhoneNumber(v, c.Format.Patterns...) },
	schema.Currency: func(c schema.Column, v string) bool {
		opts := validator.DefaultCurrencyOptions()
		if c.Format.Currency != nil {
			opts = *c.Format.Currency
		}
		return validator.IsCurrency(v, opts)
	},
	schema.Number: func(_ schema.Column, v string) bool { return validator.IsNumber(v) },
	schema.String: func(_ schema.Column, v string) bool { return validator.IsString(v) },
}

// boundColumn is a header together with the definition it resolved to.
type boundColumn struct {
	header string
	col    schema.Column
	ok     bool
}

// bindColumns resolves every header once per run.
func (v *Validator) bindColumns(headers []string) []boundColumn {
	bound := make([]boundColumn, len(headers))
	for i, h := range headers {
		col, ok := v.schema.Resolve(h, i)
		bound[i] = boundColumn{header: h, col: col, ok: ok}
	}
	return bound
}

// validateRow checks every column of one data row in header order.
func (v *Validator) validateRow(rec csvsource.Record, row int, columns []boundColumn, tracker *duplicateTracker, b *reportBuilder) error {
	for i, bc := range columns {
		if !bc.ok {
			continue
		}
		header, col := bc.header, bc.col

		value, present := rec[header]
		params := map[string]any{"row": row, "column": i + 1, "header": header}

		if v.blank(value, present) {
			if col.Required && v.missing(col, value, header) {
				b.add(row, header, KindRequired, override(col.Errors.Required, func() string {
					return v.message(string(KindRequired), params)
				}))
			}
			continue
		}

		if col.ValidateDuplicates {
			tracker.add(header, value, row)
		}

		if col.Type == schema.String && col.MaxLength != nil && !validator.WithinMaxLength(value, *col.MaxLength) {
			params["max"] = *col.MaxLength
			params["length"] = utf8.RuneCountInString(value)
			b.add(row, header, KindMaxLength, override(col.Errors.Invalid, func() string {
				return v.message(string(KindMaxLength), params)
			}))
		}

		if col.CustomValidator != nil {
			res, err := callCustom(col.CustomValidator, value)
			if err != nil {
				return &CustomValidatorError{Row: row, Column: header, Err: err}
			}
			if !res.OK() {
				msg := override(res.Message(), func() string {
					return override(col.Errors.Invalid, func() string {
						params["format"] = formatList(col)
						return v.message(string(col.Type), params)
					})
				})
				b.add(row, header, KindInvalid, msg)
			}
			continue
		}

		if !v.check(col, value) {
			b.add(row, header, KindInvalid, override(col.Errors.Invalid, func() string {
				params["format"] = formatList(col)
				return v.message(string(col.Type), params)
			}))
		}
	}
	return nil
}

// check runs the global override for the column type, else the built-in checker.
func (v *Validator) check(col schema.Column, value string) bool {
	if fn, ok := v.checkers[col.Type]; ok {
		return fn(value, col.Format, col.Places())
	}
	if fn, ok := builtinCheckers[col.Type]; ok {
		return fn(col, value)
	}
	return false
}

// blank applies the blank-value policy. Absent values are always blank.
func (v *Validator) blank(value string, present bool) bool {
	if !present {
		return true
	}
	if v.emptyCheck != nil {
		return v.emptyCheck(value)
	}
	return strings.TrimSpace(value) == ""
}

// missing reports whether a blank value of a required column is a violation.
func (v *Validator) missing(col schema.Column, value, header string) bool {
	switch {
	case col.CustomRequiredValidator != nil:
		return !col.CustomRequiredValidator(value, header)
	case v.requiredCheck != nil:
		return !v.requiredCheck(value, header)
	default:
		return true
	}
}

func (v *Validator) emptyRecord(rec csvsource.Record, headers []string) bool {
	for _, h := range headers {
		value, present := rec[h]
		if !v.blank(value, present) {
			return false
		}
	}
	return true
}

// callCustom runs a custom validator, turning a panic into an error.
func callCustom(fn schema.CustomValidator, value string) (res schema.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(value)
}

// formatList is the {format} placeholder: declared patterns, or the defaults
// tried for date and datetime columns.
func formatList(col schema.Column) string {
	if !col.Format.IsZero() {
		return col.Format.String()
	}
	switch col.Type {
	case schema.Date:
		return strings.Join(validator.DefaultDateFormats, ", ")
	case schema.DateTime:
		return strings.Join(validator.DefaultDateTimeFormats, ", ")
	}
	return ""
}

func override(custom string, fallback func() string) string {
	if custom != "" {
		return custom
	}
	return fallback()
}
