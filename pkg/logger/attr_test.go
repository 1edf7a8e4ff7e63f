package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csvcheck/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("cell", logger.Row(3), logger.Column("Email"))
	require.Equal(t, "cell", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "row", g[0].Key)
	assert.Equal(t, "column", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.RunID("r-1"), "run_id", "r-1"},
		{logger.Row(7), "row", int64(7)},
		{logger.Column("ID"), "column", "ID"},
		{logger.Source("s3://bucket/a.csv"), "source", "s3://bucket/a.csv"},
		{logger.Valid(true), "valid", true},
		{logger.Issues(2), "issues", int64(2)},
		{logger.Rows(10), "rows", int64(10)},
		{logger.Duration(time.Second), "duration", time.Second},
		{logger.Component("engine"), "component", "engine"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}
