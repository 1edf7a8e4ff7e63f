// Package metrics records validation-run instrumentation behind a small
// Backend interface.
//
// Callers use RecordRun and RecordIssues; the backend decides where numbers go.
// Nop discards everything and is the default of the csvvalidator package.
// Prometheus keeps client_golang collectors in a private registry and can push
// them to a Pushgateway on Flush, which suits short-lived CLI runs:
//
//	backend, err := metrics.NewPrometheus(
//	    metrics.WithPushGateway("http://pushgateway:9091", "nightly-import"),
//	)
//	v, err := csvvalidator.New(s, csvvalidator.WithMetrics(backend))
//	...
//	defer backend.Flush()
package metrics
