package schema

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/csvcheck/pkg/validator"
)

// Column defines how one CSV column is validated.
type Column struct {
	Name     string
	Type     DataType
	Required bool
	Format   Format

	// DecimalPlaces limits the fractional digits of decimal columns; nil means unlimited.
	DecimalPlaces *int
	// MaxLength limits string columns to this many characters.
	MaxLength *int
	// AllowThousandsSeparator lets decimal columns contain "," grouping.
	AllowThousandsSeparator bool
	ValidateDuplicates      bool

	CustomValidator         CustomValidator
	CustomRequiredValidator RequiredValidator
	Errors                  ColumnErrors
}

// Places returns the decimal places constraint, or validator.AnyPlaces when unset.
func (c Column) Places() int {
	if c.DecimalPlaces == nil {
		return validator.AnyPlaces
	}
	return *c.DecimalPlaces
}

// clone copies the pointer and slice fields so that the copy shares no memory with c.
func (c Column) clone() Column {
	if c.DecimalPlaces != nil {
		c.DecimalPlaces = IntPtr(*c.DecimalPlaces)
	}
	if c.MaxLength != nil {
		c.MaxLength = IntPtr(*c.MaxLength)
	}
	c.Format.Patterns = slices.Clone(c.Format.Patterns)
	if c.Format.Currency != nil {
		opts := *c.Format.Currency
		opts.DigitsAfterDecimal = slices.Clone(opts.DigitsAfterDecimal)
		c.Format.Currency = &opts
	}
	return c
}

// IntPtr is a helper for the optional numeric fields of Column.
func IntPtr(v int) *int { return &v }

// Schema is an ordered, immutable set of column definitions. It keeps its own
// copies of the columns; accessors return copies as well.
type Schema struct {
	columns []Column
	index   map[string]int
}

// New validates the columns and builds a schema. Column order is the expected header order.
func New(columns ...Column) (*Schema, error) {
	if len(columns) == 0 {
		return nil, ErrEmptySchema
	}

	s := &Schema{
		columns: make([]Column, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	var errs validator.ValidationErrors
	seen := make(map[string]struct{}, len(columns))

	for i, col := range columns {
		col = col.clone()
		field := fmt.Sprintf("columns[%d]", i)
		if col.Name != "" {
			field = col.Name
		}

		errs.Merge(validator.Apply(
			validator.RequiredString(field+".name", col.Name),
			validator.When(col.Name != "", validator.Unique(field+".name", normalizeName(col.Name), seen)),
			validator.InListString(field+".type", string(col.Type), dataTypeNames()),
		))
		errs.Merge(validateColumn(field, &col))

		s.columns[i] = col
		s.index[normalizeName(col.Name)] = i
	}

	if !errs.IsEmpty() {
		return nil, errors.Join(ErrInvalidSchema, errs)
	}
	return s, nil
}

// MustNew is like New but panics on error. Intended for package-level schemas and tests.
func MustNew(columns ...Column) *Schema {
	s, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return s
}

// validateColumn checks the type-specific settings of col and resolves currency formats in place.
func validateColumn(field string, col *Column) error {
	rules := []validator.Rule{
		validator.When(col.DecimalPlaces != nil,
			validator.MinNum(field+".decimalPlaces", deref(col.DecimalPlaces), 0)),
		validator.When(col.MaxLength != nil,
			validator.MinNum(field+".maxLength", deref(col.MaxLength), 1)),
		validator.When(col.MaxLength != nil,
			validator.InListString(field+".maxLength", string(col.Type), []string{string(String)})),
	}

	switch col.Type {
	case Date, DateTime:
		for _, p := range col.Format.Patterns {
			rules = append(rules, validator.ValidDatePattern(field+".format", p))
		}
	case PhoneNumber:
		for _, p := range col.Format.Patterns {
			rules = append(rules, validator.ValidPhoneTemplate(field+".format", p))
		}
	case Currency:
		opts, rule := resolveCurrency(field, col.Format)
		rules = append(rules, rule)
		col.Format.Currency = &opts
	}

	return validator.Apply(rules...)
}

// resolveCurrency turns a currency column format into concrete options.
// A single ISO 4217 code pattern ("EUR") selects that currency's conventions.
func resolveCurrency(field string, f Format) (validator.CurrencyOptions, validator.Rule) {
	switch {
	case f.Currency != nil:
		return *f.Currency, validator.ValidCurrencyOptions(field+".format", *f.Currency)
	case len(f.Patterns) == 1:
		opts, err := validator.CurrencyOptionsForCode(f.Patterns[0])
		if err != nil {
			return validator.DefaultCurrencyOptions(), validator.ValidCurrencyCode(field+".format", f.Patterns[0])
		}
		return opts, validator.ValidCurrencyOptions(field+".format", opts)
	case len(f.Patterns) > 1:
		return validator.DefaultCurrencyOptions(), validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{
				Field:          field + ".format",
				Message:        "currency format accepts a single currency code",
				TranslationKey: "validation.currency_format",
			},
		}
	default:
		opts := validator.DefaultCurrencyOptions()
		return opts, validator.ValidCurrencyOptions(field+".format", opts)
	}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// normalizeName puts header names in NFC so composed and decomposed forms compare equal.
func normalizeName(name string) string {
	return norm.NFC.String(name)
}

// Len is the expected header length.
func (s *Schema) Len() int { return len(s.columns) }

// Columns returns a copy of the column definitions in order.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.columns))
	for i, c := range s.columns {
		out[i] = c.clone()
	}
	return out
}

// Names returns the column names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.Name
	}
	return names
}

// Column looks a definition up by header name.
func (s *Schema) Column(name string) (Column, bool) {
	i, ok := s.index[normalizeName(name)]
	if !ok {
		return Column{}, false
	}
	return s.columns[i].clone(), true
}

// Has reports whether name is a defined column.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[normalizeName(name)]
	return ok
}

// At returns the i-th definition.
func (s *Schema) At(i int) (Column, bool) {
	if i < 0 || i >= len(s.columns) {
		return Column{}, false
	}
	return s.columns[i].clone(), true
}

// Resolve finds the definition for the header at position i: by name first, then by position.
func (s *Schema) Resolve(header string, i int) (Column, bool) {
	if col, ok := s.Column(header); ok {
		return col, true
	}
	return s.At(i)
}
