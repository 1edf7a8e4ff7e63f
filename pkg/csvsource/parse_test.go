package csvsource_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csvcheck/pkg/csvsource"
)

func TestParse(t *testing.T) {
	ctx := context.Background()

	t.Run("header and records", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, "ID,Email\n1,a@b.com\n2,c@d.com\n")
		require.NoError(t, err)
		assert.Equal(t, []string{"ID", "Email"}, table.Headers)
		require.Len(t, table.Records, 2)
		assert.Equal(t, csvsource.Record{"ID": "2", "Email": "c@d.com"}, table.Records[1])
		assert.Empty(t, table.ParseErrors)
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, "\ufeffID,Name\n1,x\n")
		require.NoError(t, err)
		assert.Equal(t, "ID", table.Headers[0])
		assert.Equal(t, "1", table.Records[0]["ID"])
	})

	t.Run("reports ragged rows", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, "A,B,C\n1,2\n1,2,3,4\n1,2,3\n")
		require.NoError(t, err)
		require.Len(t, table.Records, 3)
		assert.Equal(t, []csvsource.ParseError{
			{Row: 0, Message: "Too few fields: expected 3 fields but parsed 2"},
			{Row: 1, Message: "Too many fields: expected 3 fields but parsed 4"},
		}, table.ParseErrors)

		_, ok := table.Records[0]["C"]
		assert.False(t, ok, "missing field must be absent, not empty")
	})

	t.Run("reports malformed quotes", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, "A,B\n1,x\"y\n2,z\n")
		require.NoError(t, err)
		require.Len(t, table.ParseErrors, 1)
		assert.Equal(t, 0, table.ParseErrors[0].Row)
		assert.Contains(t, table.ParseErrors[0].Message, "bare \"")
		assert.Len(t, table.Records, 2)
	})

	t.Run("lazy quotes", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, "A,B\n1,x\"y\n", csvsource.WithLazyQuotes(true))
		require.NoError(t, err)
		assert.Empty(t, table.ParseErrors)
		assert.Equal(t, "x\"y", table.Records[0]["B"])
	})

	t.Run("empty input", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, table.Headers)
		assert.Empty(t, table.Records)
	})

	t.Run("skips blank lines", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, "A,B\n\n1,2\n\n")
		require.NoError(t, err)
		assert.Len(t, table.Records, 1)
	})

	t.Run("empty records kept by default", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, "A,B\n,\n1,2\n")
		require.NoError(t, err)
		require.Len(t, table.Records, 2)
		assert.Equal(t, csvsource.Record{"A": "", "B": ""}, table.Records[0])
	})

	t.Run("skip empty records", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, "A,B\n, \n1,2\n", csvsource.WithSkipEmptyRecords(true))
		require.NoError(t, err)
		require.Len(t, table.Records, 1)
		assert.Equal(t, "1", table.Records[0]["A"])
	})

	t.Run("custom delimiter and header trimming", func(t *testing.T) {
		table, err := csvsource.ParseString(ctx, " A ; B\n1;2\n",
			csvsource.WithComma(';'),
			csvsource.WithTrimHeaders(true),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, table.Headers)
		assert.Equal(t, "2", table.Records[0]["B"])
	})

	t.Run("invalid delimiter", func(t *testing.T) {
		_, err := csvsource.ParseString(ctx, "A\n", csvsource.WithComma('"'))
		assert.ErrorIs(t, err, csvsource.ErrInvalidComma)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := csvsource.ParseString(cctx, "A\n1\n")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParse_Checksum(t *testing.T) {
	ctx := context.Background()
	content := "ID,Name\n1,x\n"

	a, err := csvsource.Parse(ctx, strings.NewReader(content))
	require.NoError(t, err)
	b, err := csvsource.Parse(ctx, strings.NewReader(content))
	require.NoError(t, err)
	c, err := csvsource.Parse(ctx, strings.NewReader("ID,Name\n2,x\n"))
	require.NoError(t, err)

	assert.NotZero(t, a.Checksum)
	assert.Equal(t, a.Checksum, b.Checksum)
	assert.NotEqual(t, a.Checksum, c.Checksum)
	assert.Equal(t, int64(len(content)), a.Bytes)
}
