package csvvalidator

import (
	"fmt"
	"sort"
	"time"
)

// IssueKind classifies an issue. The values double as message catalog keys,
// except KindParse and KindInvalid.
type IssueKind string

const (
	KindParse           IssueKind = "parse"
	KindHeaderLength    IssueKind = "headerLength"
	KindInvalidHeader   IssueKind = "invalidHeader"
	KindDuplicateHeader IssueKind = "duplicateHeader"
	KindEmptyRow        IssueKind = "emptyRow"
	KindRequired        IssueKind = "required"
	KindMaxLength       IssueKind = "maxLength"
	KindInvalid         IssueKind = "invalid"
	KindDuplicate       IssueKind = "duplicate"
	KindValid           IssueKind = "valid"
)

// Issue is one message of a report, attached to a row number.
type Issue struct {
	Row     int       `json:"row"`
	Column  string    `json:"column,omitempty"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// Report is the outcome of one validation run.
//
// Messages groups issue messages by row number, in the order they were found.
// Key 0 holds dataset level messages; header issues sit at the row before the
// first data row. A valid report has exactly one message, under key 0.
type Report struct {
	RunID    string           `json:"runId"`
	Valid    bool             `json:"valid"`
	Issues   []Issue          `json:"issues"`
	Messages map[int][]string `json:"messages"`
	Rows     int              `json:"rows"`
	Checksum uint64           `json:"checksum,omitempty"`
	Duration time.Duration    `json:"duration"`
}

// RowNumbers returns the keys of Messages in ascending order.
func (r *Report) RowNumbers() []int {
	rows := make([]int, 0, len(r.Messages))
	for row := range r.Messages {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// Lines flattens Messages into "Row N: message" strings ordered by row.
// Dataset level messages are not prefixed.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Issues))
	for _, row := range r.RowNumbers() {
		for _, msg := range r.Messages[row] {
			if row == 0 {
				lines = append(lines, msg)
				continue
			}
			lines = append(lines, fmt.Sprintf("Row %d: %s", row, msg))
		}
	}
	return lines
}

// Count returns the number of issues of kind.
func (r *Report) Count(kind IssueKind) int {
	n := 0
	for _, is := range r.Issues {
		if is.Kind == kind {
			n++
		}
	}
	return n
}

// reportBuilder accumulates issues for one run.
type reportBuilder struct {
	report *Report
}

func newReportBuilder(runID string) *reportBuilder {
	return &reportBuilder{report: &Report{
		RunID:    runID,
		Issues:   []Issue{},
		Messages: make(map[int][]string),
	}}
}

func (b *reportBuilder) add(row int, column string, kind IssueKind, message string) {
	b.report.Issues = append(b.report.Issues, Issue{Row: row, Column: column, Kind: kind, Message: message})
	b.report.Messages[row] = append(b.report.Messages[row], message)
}

func (b *reportBuilder) empty() bool {
	return len(b.report.Issues) == 0
}
