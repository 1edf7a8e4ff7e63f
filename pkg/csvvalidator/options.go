package csvvalidator

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/csvcheck/pkg/csvsource"
	"github.com/dmitrymomot/csvcheck/pkg/i18n"
	"github.com/dmitrymomot/csvcheck/pkg/metrics"
	"github.com/dmitrymomot/csvcheck/pkg/schema"
)

// TypeChecker replaces the built-in check of a data type for every column of
// that type. Its result is authoritative.
type TypeChecker func(value string, format schema.Format, decimalPlaces int) bool

// RequiredCheck decides whether a blank value of a required column counts as
// present. Column level CustomRequiredValidator takes precedence.
type RequiredCheck func(value, column string) bool

// EmptyValueCheck redefines blankness for present values, e.g. treating "-" or
// "N/A" as blank. Absent values are always blank.
type EmptyValueCheck func(value string) bool

// DefaultRowIndexStart makes row numbers match file lines when the header is
// the first line: the first data row is row 2.
const DefaultRowIndexStart = 2

// Option configures a Validator.
type Option func(*Validator)

// WithLanguage sets the language of report messages. Default is "en".
func WithLanguage(lang string) Option {
	return func(v *Validator) {
		if lang != "" {
			v.lang = lang
		}
	}
}

// WithMessages overrides message templates per language and key.
func WithMessages(messages map[string]map[string]string) Option {
	return func(v *Validator) {
		v.catalogOptions = append(v.catalogOptions, i18n.WithMessages(messages))
	}
}

// WithInvalidMessages overrides the invalid-value template of data types in
// every language. Per-language WithMessages entries still win.
func WithInvalidMessages(messages map[schema.DataType]string) Option {
	return func(v *Validator) {
		shared := make(map[string]string, len(messages))
		for dt, tmpl := range messages {
			if !dt.Valid() {
				v.optErrs = append(v.optErrs, fmt.Errorf("%w: invalid message for unknown type %q", ErrInvalidOption, dt))
				continue
			}
			shared[string(dt)] = tmpl
		}
		v.catalogOptions = append(v.catalogOptions, i18n.WithSharedMessages(shared))
	}
}

// WithMessagesFile loads message overrides from a YAML or JSON file.
func WithMessagesFile(path string) Option {
	return func(v *Validator) {
		adapter, err := i18n.NewFileAdapter(path)
		if err != nil {
			v.optErrs = append(v.optErrs, err)
			return
		}
		v.catalogOptions = append(v.catalogOptions, i18n.WithAdapter(adapter))
	}
}

// WithCatalog uses a prebuilt message catalog. It cannot be combined with
// the message override options.
func WithCatalog(c *i18n.Catalog) Option {
	return func(v *Validator) {
		v.catalog = c
	}
}

// WithTypeChecker registers a replacement checker for a data type.
func WithTypeChecker(dt schema.DataType, fn TypeChecker) Option {
	return func(v *Validator) {
		if !dt.Valid() || fn == nil {
			v.optErrs = append(v.optErrs, fmt.Errorf("%w: type checker for %q", ErrInvalidOption, dt))
			return
		}
		v.checkers[dt] = fn
	}
}

// WithRequiredCheck registers the global required check.
func WithRequiredCheck(fn RequiredCheck) Option {
	return func(v *Validator) {
		v.requiredCheck = fn
	}
}

// WithEmptyValueCheck replaces the default blank check (empty after trimming).
func WithEmptyValueCheck(fn EmptyValueCheck) Option {
	return func(v *Validator) {
		v.emptyCheck = fn
	}
}

// WithValidateHeaderNames toggles the per-name header check. Default is true;
// the header length is always checked.
func WithValidateHeaderNames(enabled bool) Option {
	return func(v *Validator) {
		v.validateHeaderNames = enabled
	}
}

// WithRowIndexStart sets the row number of the first data row.
// Header issues are reported at start-1.
func WithRowIndexStart(start int) Option {
	return func(v *Validator) {
		if start < 1 {
			v.optErrs = append(v.optErrs, fmt.Errorf("%w: row index start must be at least 1, got %d", ErrInvalidOption, start))
			return
		}
		v.rowIndexStart = start
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithMetrics sets the metrics backend. Default is metrics.Nop().
func WithMetrics(b metrics.Backend) Option {
	return func(v *Validator) {
		if b != nil {
			v.metrics = b
		}
	}
}

// WithParseOptions configures the tokenizer used by ValidateReader.
func WithParseOptions(opts ...csvsource.Option) Option {
	return func(v *Validator) {
		v.parseOptions = append(v.parseOptions, opts...)
	}
}
