package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	playground "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/csvcheck/pkg/validator"
)

// FileFormat identifies the encoding of a schema document.
type FileFormat string

const (
	FormatYAML FileFormat = "yaml"
	FormatJSON FileFormat = "json"
	FormatTOML FileFormat = "toml"
)

// DetectFormat determines the document format from the file extension.
func DetectFormat(path string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads a schema document from path; the format follows the file extension.
func Load(ctx context.Context, path string) (*Schema, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(ctx, format, content)
}

// Parse decodes a schema document.
//
//	columns:
//	  - name: ID
//	    type: integer
//	    required: true
//	    validateDuplicates: true
//	  - name: Joined
//	    type: date
//	    format: [DD/MM/YYYY, YYYY-MM-DD]
//	  - name: Price
//	    type: currency
//	    currency: {code: EUR}
func Parse(ctx context.Context, format FileFormat, content []byte) (*Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc document
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(content), &doc)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown keys: %v", undecoded)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}

	if err := documentValidator.Struct(doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, fromPlayground(err))
	}

	columns := make([]Column, 0, len(doc.Columns))
	for _, cd := range doc.Columns {
		col, err := cd.column()
		if err != nil {
			return nil, errors.Join(ErrInvalidDocument, err)
		}
		columns = append(columns, col)
	}
	return New(columns...)
}

type document struct {
	Columns []columnDocument `yaml:"columns" json:"columns" toml:"columns" validate:"required,min=1,dive"`
}

type columnDocument struct {
	Name                    string            `yaml:"name" json:"name" toml:"name" validate:"required"`
	Type                    string            `yaml:"type" json:"type" toml:"type" validate:"required,datatype"`
	Required                bool              `yaml:"required" json:"required" toml:"required"`
	Format                  patternList       `yaml:"format" json:"format" toml:"format"`
	Currency                *currencyDocument `yaml:"currency" json:"currency" toml:"currency"`
	DecimalPlaces           *int              `yaml:"decimalPlaces" json:"decimalPlaces" toml:"decimalPlaces" validate:"omitempty,min=0"`
	MaxLength               *int              `yaml:"maxLength" json:"maxLength" toml:"maxLength" validate:"omitempty,min=1"`
	AllowThousandsSeparator bool              `yaml:"allowThousandsSeparator" json:"allowThousandsSeparator" toml:"allowThousandsSeparator"`
	ValidateDuplicates      bool              `yaml:"validateDuplicates" json:"validateDuplicates" toml:"validateDuplicates"`
	Match                   string            `yaml:"match" json:"match" toml:"match"`
	Errors                  errorsDocument    `yaml:"errors" json:"errors" toml:"errors"`
}

type errorsDocument struct {
	Required string `yaml:"required" json:"required" toml:"required"`
	Invalid  string `yaml:"invalid" json:"invalid" toml:"invalid"`
}

type currencyDocument struct {
	Code                  string  `yaml:"code" json:"code" toml:"code" validate:"omitempty,len=3"`
	Symbol                *string `yaml:"symbol" json:"symbol" toml:"symbol"`
	RequireSymbol         *bool   `yaml:"requireSymbol" json:"requireSymbol" toml:"requireSymbol"`
	SymbolAfterDigits     *bool   `yaml:"symbolAfterDigits" json:"symbolAfterDigits" toml:"symbolAfterDigits"`
	AllowSpaceAfterSymbol *bool   `yaml:"allowSpaceAfterSymbol" json:"allowSpaceAfterSymbol" toml:"allowSpaceAfterSymbol"`
	ThousandsSeparator    *string `yaml:"thousandsSeparator" json:"thousandsSeparator" toml:"thousandsSeparator"`
	DecimalSeparator      *string `yaml:"decimalSeparator" json:"decimalSeparator" toml:"decimalSeparator"`
	AllowDecimal          *bool   `yaml:"allowDecimal" json:"allowDecimal" toml:"allowDecimal"`
	RequireDecimal        *bool   `yaml:"requireDecimal" json:"requireDecimal" toml:"requireDecimal"`
	DigitsAfterDecimal    []int   `yaml:"digitsAfterDecimal" json:"digitsAfterDecimal" toml:"digitsAfterDecimal" validate:"omitempty,dive,min=1"`
	AllowNegatives        *bool   `yaml:"allowNegatives" json:"allowNegatives" toml:"allowNegatives"`
	ParensForNegatives    *bool   `yaml:"parensForNegatives" json:"parensForNegatives" toml:"parensForNegatives"`
}

func (cd columnDocument) column() (Column, error) {
	dt, err := ParseDataType(cd.Type)
	if err != nil {
		return Column{}, err
	}

	col := Column{
		Name:                    cd.Name,
		Type:                    dt,
		Required:                cd.Required,
		Format:                  Format{Patterns: []string(cd.Format)},
		DecimalPlaces:           cd.DecimalPlaces,
		MaxLength:               cd.MaxLength,
		AllowThousandsSeparator: cd.AllowThousandsSeparator,
		ValidateDuplicates:      cd.ValidateDuplicates,
		Errors:                  ColumnErrors(cd.Errors),
	}

	if cd.Currency != nil {
		opts, err := cd.Currency.options()
		if err != nil {
			return Column{}, fmt.Errorf("%s.currency: %w", cd.Name, err)
		}
		col.Format.Currency = &opts
	}

	if cd.Match != "" {
		re, err := regexp.Compile(cd.Match)
		if err != nil {
			return Column{}, fmt.Errorf("%s.match: %w", cd.Name, err)
		}
		col.CustomValidator = BoolValidator(func(v string) bool {
			return re.MatchString(v)
		})
	}

	return col, nil
}

func (cd *currencyDocument) options() (validator.CurrencyOptions, error) {
	opts := validator.DefaultCurrencyOptions()
	if cd.Code != "" {
		var err error
		if opts, err = validator.CurrencyOptionsForCode(cd.Code); err != nil {
			return opts, err
		}
	}

	setString(&opts.Symbol, cd.Symbol)
	setBool(&opts.RequireSymbol, cd.RequireSymbol)
	setBool(&opts.SymbolAfterDigits, cd.SymbolAfterDigits)
	setBool(&opts.AllowSpaceAfterSymbol, cd.AllowSpaceAfterSymbol)
	setString(&opts.ThousandsSeparator, cd.ThousandsSeparator)
	setString(&opts.DecimalSeparator, cd.DecimalSeparator)
	setBool(&opts.AllowDecimal, cd.AllowDecimal)
	setBool(&opts.RequireDecimal, cd.RequireDecimal)
	setBool(&opts.AllowNegatives, cd.AllowNegatives)
	setBool(&opts.ParensForNegatives, cd.ParensForNegatives)
	if cd.DigitsAfterDecimal != nil {
		opts.DigitsAfterDecimal = cd.DigitsAfterDecimal
	}
	return opts, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// patternList accepts either a single pattern or a list of patterns.
type patternList []string

func (p *patternList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*p = patternList{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*p = list
		return nil
	default:
		return fmt.Errorf("line %d: format must be a string or a list of strings", node.Line)
	}
}

func (p *patternList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = patternList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("format must be a string or a list of strings: %w", err)
	}
	*p = list
	return nil
}

func (p *patternList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*p = patternList{v}
		return nil
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("format entries must be strings, got %T", item)
			}
			list = append(list, s)
		}
		*p = list
		return nil
	default:
		return fmt.Errorf("format must be a string or a list of strings, got %T", data)
	}
}

var documentValidator = newDocumentValidator()

func newDocumentValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	mustRegisterValidation(v, "datatype", func(fl playground.FieldLevel) bool {
		_, err := ParseDataType(fl.Field().String())
		return err == nil
	})
	return v
}

// mustRegisterValidation panics when tag cannot be registered, like regexp.MustCompile.
func mustRegisterValidation(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("schema: register %q validation: %v", tag, err))
	}
}

// fromPlayground converts struct tag failures into ValidationErrors.
func fromPlayground(err error) error {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		out = append(out, validator.ValidationError{
			Field:          fe.Namespace(),
			Message:        msg,
			TranslationKey: "validation." + fe.Tag(),
			TranslationValues: map[string]any{
				"field": fe.Namespace(),
				"param": fe.Param(),
			},
		})
	}
	return out
}
