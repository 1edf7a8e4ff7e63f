package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// ErrPushFailed wraps errors returned by the Pushgateway.
var ErrPushFailed = errors.New("metrics push failed")

// Prometheus is a Backend backed by client_golang collectors.
// Metrics are registered in their own registry; Flush pushes them to a
// Pushgateway when one is configured and is a no-op otherwise.
type Prometheus struct {
	reg        *prometheus.Registry
	gatewayURL string
	job        string

	runs     *prometheus.CounterVec
	rows     prometheus.Counter
	issues   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// PrometheusOption configures a Prometheus backend.
type PrometheusOption func(*Prometheus)

// WithPushGateway pushes metrics to the gateway at url under job on Flush.
func WithPushGateway(url, job string) PrometheusOption {
	return func(p *Prometheus) {
		p.gatewayURL = url
		if job != "" {
			p.job = job
		}
	}
}

// NewPrometheus registers the csvcheck collectors in a fresh registry.
func NewPrometheus(opts ...PrometheusOption) (*Prometheus, error) {
	p := &Prometheus{
		reg: prometheus.NewRegistry(),
		job: "csvcheck",
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: RunsTotal,
			Help: "Validation runs, partitioned by result.",
		}, []string{"result"}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: RowsTotal,
			Help: "Data rows checked.",
		}),
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: IssuesTotal,
			Help: "Validation issues, partitioned by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    RunDurationSeconds,
			Help:    "Duration of validation runs in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"result"}),
	}

	for _, opt := range opts {
		opt(p)
	}

	for _, c := range []prometheus.Collector{p.runs, p.rows, p.issues, p.duration} {
		if err := p.reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return p, nil
}

// Registry exposes the underlying registry, e.g. for promhttp or tests.
func (p *Prometheus) Registry() *prometheus.Registry { return p.reg }

func (p *Prometheus) IncCounter(name string, delta float64, labels Labels) {
	switch name {
	case RunsTotal:
		p.runs.WithLabelValues(labels["result"]).Add(delta)
	case RowsTotal:
		p.rows.Add(delta)
	case IssuesTotal:
		p.issues.WithLabelValues(labels["kind"]).Add(delta)
	}
}

func (p *Prometheus) ObserveHistogram(name string, value float64, labels Labels) {
	if name != RunDurationSeconds {
		return
	}
	p.duration.WithLabelValues(labels["result"]).Observe(value)
}

// Flush pushes the registry to the configured Pushgateway.
func (p *Prometheus) Flush() error {
	if p.gatewayURL == "" {
		return nil
	}
	if err := push.New(p.gatewayURL, p.job).Gatherer(p.reg).Push(); err != nil {
		return errors.Join(ErrPushFailed, err)
	}
	return nil
}
