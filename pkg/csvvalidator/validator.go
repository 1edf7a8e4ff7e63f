package csvvalidator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/csvcheck/pkg/csvsource"
	"github.com/dmitrymomot/csvcheck/pkg/i18n"
	"github.com/dmitrymomot/csvcheck/pkg/logger"
	"github.com/dmitrymomot/csvcheck/pkg/metrics"
	"github.com/dmitrymomot/csvcheck/pkg/schema"
)

// Input is a tokenized CSV document.
type Input struct {
	Headers     []string
	Records     []csvsource.Record
	ParseErrors []csvsource.ParseError
}

// InputFromTable adapts a csvsource table.
func InputFromTable(t *csvsource.Table) Input {
	return Input{Headers: t.Headers, Records: t.Records, ParseErrors: t.ParseErrors}
}

// Validator checks CSV data against a schema.
// It holds no per-run state and is safe for concurrent use.
type Validator struct {
	schema  *schema.Schema
	catalog *i18n.Catalog
	lang    string

	checkers            map[schema.DataType]TypeChecker
	requiredCheck       RequiredCheck
	emptyCheck          EmptyValueCheck
	validateHeaderNames bool
	rowIndexStart       int

	logger       *slog.Logger
	metrics      metrics.Backend
	parseOptions []csvsource.Option

	catalogOptions []i18n.Option
	optErrs        []error
}

// New builds a validator for s.
func New(s *schema.Schema, opts ...Option) (*Validator, error) {
	if s == nil {
		return nil, ErrNilSchema
	}

	v := &Validator{
		schema:              s,
		lang:                i18n.DefaultLanguage,
		checkers:            make(map[schema.DataType]TypeChecker),
		validateHeaderNames: true,
		rowIndexStart:       DefaultRowIndexStart,
		logger:              logger.Discard(),
		metrics:             metrics.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if len(v.optErrs) > 0 {
		return nil, errors.Join(v.optErrs...)
	}

	switch {
	case v.catalog != nil && len(v.catalogOptions) > 0:
		return nil, fmt.Errorf("%w: message overrides cannot be combined with WithCatalog", ErrInvalidOption)
	case v.catalog == nil:
		catalogOpts := append([]i18n.Option{i18n.WithLogger(v.logger)}, v.catalogOptions...)
		c, err := i18n.New(context.Background(), catalogOpts...)
		if err != nil {
			return nil, err
		}
		v.catalog = c
	}
	v.catalogOptions = nil

	return v, nil
}

// Schema returns the schema the validator checks against.
func (v *Validator) Schema() *schema.Schema { return v.schema }

// Validate checks one tokenized document. Data problems are reported as issues;
// an error means the run could not complete (cancelled context or a broken
// custom validator).
//
// Upstream parse errors and header problems stop the run before any row is
// checked. Otherwise rows are checked in order, then duplicates are reported
// for every row that shares a tracked value.
func (v *Validator) Validate(ctx context.Context, in Input) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	b := newReportBuilder(runID)
	b.report.Rows = len(in.Records)

	v.logger.DebugContext(ctx, "csv validation started",
		logger.Rows(len(in.Records)),
		slog.Int("headers", len(in.Headers)))

	if len(in.ParseErrors) > 0 {
		for _, pe := range in.ParseErrors {
			b.add(pe.Row+v.rowIndexStart, "", KindParse, pe.Message)
		}
		return v.finish(ctx, b, start), nil
	}

	if !v.validateHeaders(in.Headers, b) {
		return v.finish(ctx, b, start), nil
	}

	tracker := newDuplicateTracker()
	columns := v.bindColumns(in.Headers)
	for i, rec := range in.Records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row := i + v.rowIndexStart
		if v.emptyRecord(rec, in.Headers) {
			b.add(row, "", KindEmptyRow, v.message(string(KindEmptyRow), map[string]any{"row": row}))
			continue
		}
		if err := v.validateRow(rec, row, columns, tracker, b); err != nil {
			v.logger.ErrorContext(ctx, "custom validator failed", logger.Row(row), logger.Error(err))
			return nil, err
		}
	}

	for _, d := range tracker.duplicates() {
		msg := v.message(string(KindDuplicate), map[string]any{
			"value":  d.Value,
			"rows":   joinRows(d.Rows),
			"column": d.Column,
		})
		for _, row := range d.Rows {
			b.add(row, d.Column, KindDuplicate, msg)
		}
	}

	return v.finish(ctx, b, start), nil
}

// ValidateReader tokenizes r with csvsource and validates the result.
func (v *Validator) ValidateReader(ctx context.Context, r io.Reader) (*Report, error) {
	table, err := csvsource.Parse(ctx, r, v.parseOptions...)
	if err != nil {
		return nil, err
	}
	return v.ValidateTable(ctx, table)
}

// ValidateTable validates a parsed table and stamps the report with its checksum.
func (v *Validator) ValidateTable(ctx context.Context, t *csvsource.Table) (*Report, error) {
	if t == nil {
		return nil, ErrNilInput
	}
	rep, err := v.Validate(ctx, InputFromTable(t))
	if err != nil {
		return nil, err
	}
	rep.Checksum = t.Checksum
	return rep, nil
}

// validateHeaders reports length and name problems; false means the run stops.
func (v *Validator) validateHeaders(headers []string, b *reportBuilder) bool {
	anchor := v.rowIndexStart - 1

	if len(headers) != v.schema.Len() {
		b.add(anchor, "", KindHeaderLength, v.message(string(KindHeaderLength), map[string]any{
			"expected": v.schema.Len(),
			"actual":   len(headers),
		}))
	}

	// Header names must be unique, compared in NFC.
	seen := make(map[string]int, len(headers))
	for i, h := range headers {
		name := norm.NFC.String(h)
		if first, ok := seen[name]; ok {
			b.add(anchor, h, KindDuplicateHeader, v.message(string(KindDuplicateHeader), map[string]any{
				"header": h,
				"column": i + 1,
				"first":  first,
			}))
			continue
		}
		seen[name] = i + 1
	}

	if v.validateHeaderNames {
		for i, h := range headers {
			if v.schema.Has(h) {
				continue
			}
			b.add(anchor, h, KindInvalidHeader, v.message(string(KindInvalidHeader), map[string]any{
				"header": h,
				"column": i + 1,
			}))
		}
	}

	return b.empty()
}

func (v *Validator) finish(ctx context.Context, b *reportBuilder, start time.Time) *Report {
	rep := b.report
	rep.Valid = b.empty()
	if rep.Valid {
		b.add(0, "", KindValid, v.message(string(KindValid), nil))
	}
	rep.Duration = time.Since(start)

	kinds := make(map[IssueKind]int)
	for _, is := range rep.Issues {
		if is.Kind != KindValid {
			kinds[is.Kind]++
		}
	}
	for kind, n := range kinds {
		metrics.RecordIssues(v.metrics, string(kind), n)
	}
	metrics.RecordRun(v.metrics, rep.Valid, rep.Rows, rep.Duration)

	v.logger.InfoContext(ctx, "csv validation finished",
		logger.Valid(rep.Valid),
		logger.Issues(len(rep.Issues)),
		logger.Rows(rep.Rows),
		logger.Duration(rep.Duration))
	return rep
}

func (v *Validator) message(key string, params map[string]any) string {
	return v.catalog.Message(v.lang, key, params)
}

func joinRows(rows []int) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = fmt.Sprint(r)
	}
	return strings.Join(parts, ", ")
}
