package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/xxh3"
)

const bom = "\ufeff"

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	comma            rune
	lazyQuotes       bool
	trimHeaders      bool
	skipEmptyRecords bool
}

func defaultParseOptions() *parseOptions {
	return &parseOptions{comma: ','}
}

// WithComma sets the field delimiter. Default is ','.
func WithComma(r rune) Option {
	return func(o *parseOptions) {
		o.comma = r
	}
}

// WithLazyQuotes lets a quote appear in an unquoted field and a non-doubled
// quote appear in a quoted field.
func WithLazyQuotes(lazy bool) Option {
	return func(o *parseOptions) {
		o.lazyQuotes = lazy
	}
}

// WithTrimHeaders trims surrounding whitespace from header names.
func WithTrimHeaders(trim bool) Option {
	return func(o *parseOptions) {
		o.trimHeaders = trim
	}
}

// WithSkipEmptyRecords drops rows whose fields are all empty (",,,").
// Lines with no characters at all are always skipped.
func WithSkipEmptyRecords(skip bool) Option {
	return func(o *parseOptions) {
		o.skipEmptyRecords = skip
	}
}

// Parse tokenizes r. The first row is the header; every following row becomes
// a Record keyed by header name. Rows with a field count different from the
// header are kept and reported in ParseErrors, as are malformed quotes.
//
// Empty input yields an empty Table. Only I/O failures and context
// cancellation are returned as errors.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Table, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.comma == '"' || o.comma == '\r' || o.comma == '\n' || o.comma == utf8.RuneError || o.comma == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidComma, o.comma)
	}

	hasher := xxh3.New()
	counter := &countingReader{r: io.TeeReader(r, hasher)}

	cr := csv.NewReader(counter)
	cr.Comma = o.comma
	cr.LazyQuotes = o.lazyQuotes
	cr.FieldsPerRecord = -1

	table := &Table{}

	header, err := cr.Read()
	switch {
	case errors.Is(err, io.EOF):
		table.Checksum, table.Bytes = hasher.Sum64(), counter.n
		return table, nil
	case err != nil:
		var pe *csv.ParseError
		if !errors.As(err, &pe) {
			return nil, errors.Join(ErrFailedToRead, err)
		}
		table.ParseErrors = append(table.ParseErrors, ParseError{Row: -1, Message: describe(pe)})
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	if o.trimHeaders {
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
	}
	table.Headers = header

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		row := len(table.Records)
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, errors.Join(ErrFailedToRead, err)
			}
			table.ParseErrors = append(table.ParseErrors, ParseError{Row: row, Message: describe(pe)})
			table.Records = append(table.Records, toRecord(header, fields))
			continue
		}

		if o.skipEmptyRecords && allEmpty(fields) {
			continue
		}

		switch {
		case len(fields) < len(header):
			table.ParseErrors = append(table.ParseErrors, ParseError{
				Row:     row,
				Message: fmt.Sprintf("Too few fields: expected %d fields but parsed %d", len(header), len(fields)),
			})
		case len(fields) > len(header):
			table.ParseErrors = append(table.ParseErrors, ParseError{
				Row:     row,
				Message: fmt.Sprintf("Too many fields: expected %d fields but parsed %d", len(header), len(fields)),
			})
		}

		table.Records = append(table.Records, toRecord(header, fields))
	}

	table.Checksum, table.Bytes = hasher.Sum64(), counter.n
	return table, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(ctx context.Context, content string, opts ...Option) (*Table, error) {
	return Parse(ctx, strings.NewReader(content), opts...)
}

func toRecord(header, fields []string) Record {
	rec := make(Record, len(header))
	for i, name := range header {
		if i < len(fields) {
			rec[name] = fields[i]
		}
	}
	return rec
}

func allEmpty(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// describe renders a csv.ParseError without its "record on line N" prefix.
func describe(pe *csv.ParseError) string {
	return fmt.Sprintf("%s (line %d, column %d)", pe.Err, pe.Line, pe.Column)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
