// Package csvvalidator validates tokenized CSV data against a schema and
// produces a localized report.
//
// A run goes through these stages, stopping early on structural problems:
//
//  1. Upstream parse errors (ragged rows, bad quoting) are reported as given.
//  2. The header must have one entry per schema column, no name may repeat
//     and, unless disabled with WithValidateHeaderNames(false), every header
//     must name a column.
//  3. Each data row is checked column by column: blank values only trigger
//     the required check; non-blank values are registered for duplicate
//     detection, checked against maxLength and then type checked.
//  4. Values seen in more than one row of a ValidateDuplicates column produce
//     one duplicate issue per contributing row.
//
// Row numbers start at DefaultRowIndexStart (2, the first data line of a file
// with a header line) and header issues are reported one row earlier. Report
// messages are grouped by row number; a valid report carries a single
// message under key 0.
//
// # Usage
//
//	s := schema.MustNew(
//	    schema.Column{Name: "ID", Type: schema.Integer, Required: true, ValidateDuplicates: true},
//	    schema.Column{Name: "Email", Type: schema.Email},
//	)
//	v, err := csvvalidator.New(s, csvvalidator.WithLanguage("fr"))
//	if err != nil {
//	    return err
//	}
//	report, err := v.ValidateReader(ctx, file)
//	if err != nil {
//	    return err
//	}
//	for _, line := range report.Lines() {
//	    fmt.Println(line)
//	}
//
// Type checking can be replaced per column (schema.Column.CustomValidator) or
// per data type (WithTypeChecker). A custom validator that returns an error or
// panics aborts the run with a *CustomValidatorError.
//
// A Validator keeps no state between runs and can be shared by goroutines.
package csvvalidator
