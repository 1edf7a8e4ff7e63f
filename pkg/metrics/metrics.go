package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Metric names emitted by the validator.
const (
	RunsTotal          = "csvcheck_runs_total"
	RowsTotal          = "csvcheck_rows_total"
	IssuesTotal        = "csvcheck_issues_total"
	RunDurationSeconds = "csvcheck_run_duration_seconds"
)

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes buffered metrics, if the backend needs it.
	Flush() error
}

type nopBackend struct{}

func (nopBackend) IncCounter(string, float64, Labels)       {}
func (nopBackend) ObserveHistogram(string, float64, Labels) {}
func (nopBackend) Flush() error                             { return nil }

// Nop returns a backend that discards everything.
func Nop() Backend { return nopBackend{} }

// RecordRun records one finished validation run.
func RecordRun(b Backend, valid bool, rows int, d time.Duration) {
	if b == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	lbls := Labels{"result": result}

	b.IncCounter(RunsTotal, 1, lbls)
	b.ObserveHistogram(RunDurationSeconds, d.Seconds(), lbls)
	if rows > 0 {
		b.IncCounter(RowsTotal, float64(rows), nil)
	}
}

// RecordIssues increments the issue counter for kind ("required", "duplicate", ...).
func RecordIssues(b Backend, kind string, n int) {
	if b == nil || n <= 0 {
		return
	}
	b.IncCounter(IssuesTotal, float64(n), Labels{"kind": kind})
}
