package metrics_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csvcheck/pkg/metrics"
)

type call struct {
	name   string
	value  float64
	labels metrics.Labels
}

type fakeBackend struct {
	mu         sync.Mutex
	counters   []call
	histograms []call
}

func (f *fakeBackend) IncCounter(name string, delta float64, labels metrics.Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = append(f.counters, call{name, delta, labels})
}

func (f *fakeBackend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.histograms = append(f.histograms, call{name, value, labels})
}

func (f *fakeBackend) Flush() error { return nil }

func TestRecordRun(t *testing.T) {
	t.Run("valid run with rows", func(t *testing.T) {
		fb := &fakeBackend{}
		metrics.RecordRun(fb, true, 12, 1500*time.Millisecond)

		require.Len(t, fb.counters, 2)
		assert.Equal(t, metrics.RunsTotal, fb.counters[0].name)
		assert.Equal(t, "valid", fb.counters[0].labels["result"])
		assert.Equal(t, metrics.RowsTotal, fb.counters[1].name)
		assert.InDelta(t, 12, fb.counters[1].value, 0.001)

		require.Len(t, fb.histograms, 1)
		assert.Equal(t, metrics.RunDurationSeconds, fb.histograms[0].name)
		assert.InDelta(t, 1.5, fb.histograms[0].value, 0.001)
	})

	t.Run("invalid run without rows", func(t *testing.T) {
		fb := &fakeBackend{}
		metrics.RecordRun(fb, false, 0, time.Millisecond)

		require.Len(t, fb.counters, 1)
		assert.Equal(t, "invalid", fb.counters[0].labels["result"])
	})

	t.Run("nil backend is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() { metrics.RecordRun(nil, true, 1, time.Second) })
	})
}

func TestRecordIssues(t *testing.T) {
	fb := &fakeBackend{}
	metrics.RecordIssues(fb, "required", 3)
	metrics.RecordIssues(fb, "duplicate", 0)

	require.Len(t, fb.counters, 1)
	assert.Equal(t, metrics.IssuesTotal, fb.counters[0].name)
	assert.Equal(t, "required", fb.counters[0].labels["kind"])
	assert.InDelta(t, 3, fb.counters[0].value, 0.001)
}

func TestNop(t *testing.T) {
	b := metrics.Nop()
	b.IncCounter(metrics.RunsTotal, 1, nil)
	b.ObserveHistogram(metrics.RunDurationSeconds, 1, nil)
	assert.NoError(t, b.Flush())
}
